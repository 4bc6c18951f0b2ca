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

package terminal

// Style is used to identify the category of text being sent to the
// Output interface. The terminal implementation can interpret this
// however is appropriate, using colour for example.
type Style int

// List of styles.
const (
	// the result of a machine step
	StyleMachineStep Style = iota

	// information about the machine. registers, memory, the screen
	StyleMachineInfo

	// information from the emulator rather than the machine
	StyleFeedback

	// help information
	StyleHelp

	// log entries
	StyleLog

	// error messages
	StyleError

	// input entered by the user. terminals that echo input already will
	// want to ignore this style
	StyleEcho
)
