// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger implements a terminal debugger for the emulated
// machine. The debugger is driven through an implementation of the
// terminal.Terminal interface; the colorterm package provides the best
// experience but the plainterm package works everywhere, including when
// input is piped from another process.
//
// The machine is stepped and run on the same goroutine as the input
// loop. The pace of a free-running machine is controlled with the same
// Limiter type used by the play mode emulation, and the machine is
// brought to a halt by a breakpoint, by an execution error or by a
// ctrl-c from the user.
//
// Commands are validated against a commandline template before being
// dispatched. The HELP command lists what is available.
package debugger
