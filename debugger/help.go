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

// help text for the debugger's top level commands.
var helps = map[string]string{
	cmdHelp: "Lists commands and provides help for individual debugger commands",

	cmdReset: "Reset the machine and reload the attached program",
	cmdQuit:  "Exits the debugger",

	cmdRun:  "Run the machine until a breakpoint is met or ctrl-c is pressed",
	cmdStep: "Step forward one instruction. A numeric argument steps that many instructions; STEP OVER runs a subroutine to completion",
	cmdHalt: "Halt a free-running machine (ctrl-c does the same)",

	cmdDisasm:    "List the disassembly around the current program counter, or around the given address",
	cmdRegisters: "Display the register file (PC, SP, I, V0 to VF and the timers)",
	cmdMemory:    "Hex dump of memory. With no arguments the dump is a window around the program counter",
	cmdPeek:      "Inspect an individual memory address",
	cmdPoke:      "Modify an individual memory address",
	cmdScreen:    "Show the current screen contents in the terminal",
	cmdKey:       "Inject a keypad event. KEY n presses the key; KEY n UP releases it",
	cmdFreq:      "Display the target and actual machine frequency, or set a new target",

	cmdBreak: "Halt execution when the program counter reaches the given address",
	cmdList:  "List current breakpoints",
	cmdClear: "Clear all breakpoints",

	cmdLog:    "Display the application log. ECHO toggles echoing of new entries; TAIL shows recent entries; CLEAR empties the log",
	cmdMemViz: "Write the machine state object graph to a Graphviz dot file",
}
