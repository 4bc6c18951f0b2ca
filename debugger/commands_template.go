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

package debugger

// debugger keywords.
const (
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdRun  = "RUN"
	cmdStep = "STEP"
	cmdHalt = "HALT"

	cmdDisasm    = "DISASM"
	cmdRegisters = "REGISTERS"
	cmdMemory    = "MEMORY"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdScreen    = "SCREEN"
	cmdKey       = "KEY"
	cmdFreq      = "FREQ"

	// halt conditions
	cmdBreak = "BREAK"
	cmdList  = "LIST"
	cmdClear = "CLEAR"

	// meta
	cmdHelp   = "HELP"
	cmdLog    = "LOG"
	cmdMemViz = "MEMVIZ"
)

var commandTemplate = []string{
	cmdReset,
	cmdQuit,

	cmdRun,
	cmdStep + " (%V|OVER)",
	cmdHalt,

	cmdDisasm + " (%V)",
	cmdRegisters,
	cmdMemory + " (%V (%V))",
	cmdPeek + " [%V]",
	cmdPoke + " [%V %V]",
	cmdScreen,
	cmdKey + " [%V] (UP)",
	cmdFreq + " (%I)",

	cmdBreak + " [%V]",
	cmdList + " (BREAKS)",
	cmdClear + " (BREAKS)",

	cmdLog + " (ECHO|TAIL|CLEAR)",
	cmdMemViz + " (%F)",
}
