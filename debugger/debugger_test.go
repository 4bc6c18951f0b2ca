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

import (
	"fmt"
	"testing"
	"time"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/debugger"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
)

// mockTerm is a minimal scripted implementation of terminal.Terminal.
// commands are fed to the debugger with sndInput() and the resulting
// output compared with cmpOutput().
type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s := <-trm.inp
	copy(buffer, s)
	return len(s) + 1, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so
		// a timeout is necessary. a matter of milliseconds should be
		// sufficient
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the string argument with the *last line* of the
// most recent output.
func (trm *mockTerm) cmpOutput(s string) {
	trm.rcvOutput()

	if len(trm.output) == 0 {
		if len(s) != 0 {
			trm.t.Errorf(fmt.Sprintf("unexpected debugger output (nothing) should be (%s)", s))
		}
		return
	}

	l := len(trm.output) - 1

	if trm.output[l] == s {
		return
	}

	trm.t.Errorf(fmt.Sprintf("unexpected debugger output (%s) should be (%s)", trm.output[l], s))
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()
	trm.testBreakpoints()
	trm.testStep()
	trm.testInspect()
	trm.testErrors()
	trm.testRunWithBreakpoint()
}

func (trm *mockTerm) testStep() {
	trm.sndInput("STEP")
	trm.cmpOutput("0200  6008  LD V0, 08")

	trm.sndInput("STEP")
	trm.cmpOutput("0202  6101  LD V1, 01")

	// the next instruction is a subroutine call. stepping over it runs
	// the subroutine in full, finishing on the RET
	trm.sndInput("STEP OVER")
	trm.cmpOutput("020a  00ee  RET")

	// the register file ends with the timers
	trm.sndInput("REGISTERS")
	trm.cmpOutput("DT=00 ST=00")
}

func (trm *mockTerm) testInspect() {
	trm.sndInput("PEEK 0x200")
	trm.cmpOutput("0200: 60")

	trm.sndInput("POKE 0x300 0xab")
	trm.cmpOutput("0300: ab")

	trm.sndInput("PEEK 0x300")
	trm.cmpOutput("0300: ab")

	trm.sndInput("PEEK 0x5000")
	trm.cmpOutput("address out of range (0x5000)")

	trm.sndInput("KEY 5")
	trm.cmpOutput("key 5 down")

	trm.sndInput("KEY 5 UP")
	trm.cmpOutput("key 5 up")
}

func (trm *mockTerm) testErrors() {
	trm.sndInput("WIBBLE")
	trm.cmpOutput("unrecognised command (WIBBLE)")

	trm.sndInput("STEP SIDEWAYS")
	trm.cmpOutput("too many arguments for STEP")

	trm.sndInput("BREAK")
	trm.cmpOutput("missing numeric argument for BREAK")

	trm.sndInput("HELP WIBBLE")
	trm.cmpOutput("no help for WIBBLE")
}

// the test program is three plain instructions, a subroutine that adds
// V1 to V0, and a spin loop at 0x206.
var testProgram = []byte{
	0x60, 0x08, // 0200 LD V0, 08
	0x61, 0x01, // 0202 LD V1, 01
	0x22, 0x08, // 0204 CALL 208
	0x12, 0x06, // 0206 JP 206
	0x80, 0x14, // 0208 ADD V0, V1
	0x00, 0xee, // 020a RET
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)

	dbg, err := debugger.NewDebugger(trm, 0)
	if err != nil {
		t.Fatalf(err.Error())
	}

	cartload := cartridgeloader.Loader{
		Filename: "stepper.ch8",
		Data:     testProgram,
	}

	go trm.testSequence()

	err = dbg.Start(&cartload)
	if err != nil {
		t.Fatalf(err.Error())
	}
}
