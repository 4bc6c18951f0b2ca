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

package debugger_test

func (trm *mockTerm) testBreakpoints() {
	trm.sndInput("LIST BREAKS")
	trm.cmpOutput("no breakpoints")

	trm.sndInput("BREAK 0x204")
	trm.cmpOutput("added breakpoint at 0x204")

	trm.sndInput("LIST BREAKS")
	trm.cmpOutput(" 0: PC->0x204")

	// adding the same breakpoint a second time is an error
	trm.sndInput("BREAK 0x204")
	trm.cmpOutput("breakpoint at 0x204 already exists")

	trm.sndInput("BREAK $206")
	trm.cmpOutput("added breakpoint at 0x206")

	trm.sndInput("LIST")
	trm.cmpOutput(" 1: PC->0x206")

	trm.sndInput("CLEAR BREAKS")
	trm.cmpOutput("breakpoints cleared")

	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")
}

func (trm *mockTerm) testRunWithBreakpoint() {
	// the machine is parked on the spin loop at this point in the test
	// sequence
	trm.sndInput("BREAK 0x206")
	trm.cmpOutput("added breakpoint at 0x206")

	// RUN steps off the breakpoint at the current address before
	// entering the run loop. the spin loop jumps straight back so the
	// breakpoint matches again and the machine halts, printing the
	// register file
	trm.sndInput("RUN")
	trm.cmpOutput("DT=00 ST=00")

	// an explicit STEP always steps, even with a breakpoint at the
	// current address
	trm.sndInput("STEP")
	trm.cmpOutput("0206  1206  JP 206")
}
