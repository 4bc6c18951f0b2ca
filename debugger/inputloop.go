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

import (
	"io"

	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/instructions"
)

// inputLoop drives the debugger. when the machine is free-running the
// loop steps it, checking halt conditions before every instruction;
// otherwise it prompts on the terminal and dispatches whatever command
// arrives.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		if dbg.runUntilHalt {
			// pace the free-running machine
			dbg.lmtr.Wait()

			// non-blocking check for interrupt signals. ctrl-c halts a
			// free-running machine rather than quitting the debugger
			select {
			case <-dbg.events.IntEvents:
				dbg.runUntilHalt = false
			default:
			}

			// check for breakpoints before the instruction at the
			// current address is executed
			if dbg.runUntilHalt {
				if msg := dbg.breakpoints.check(dbg.c8.CPU.PC); msg != "" {
					dbg.printLine(terminal.StyleFeedback, msg)
					dbg.runUntilHalt = false
				}
			}

			if dbg.runUntilHalt {
				err := dbg.c8.Step()
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
					dbg.runUntilHalt = false
				} else {
					continue // for loop
				}
			}

			// the machine has just come to a halt. the register file is
			// always printed at this point
			dbg.printRegisters()
		}

		inputLen, err := inputter.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)

		if err != nil {
			if !curated.IsAny(err) {
				switch err {
				case io.EOF:
					// exhausted input is the same as a user abort. this
					// is the normal way out when input is a script or a
					// pipe
					err = curated.Errorf(terminal.UserAbort)
				default:
					return err
				}
			}

			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt(inputter)
			} else if curated.Is(err, terminal.UserAbort) {
				dbg.running = false
			} else {
				return err
			}

			continue // for loop
		}

		if inputLen > 0 {
			err = dbg.parseCommand(string(dbg.input[:inputLen-1]))
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			}
		}
	}

	return nil
}

// buildPrompt shows the instruction the machine will execute next.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	res := execution.Result{
		Address:     dbg.c8.CPU.PC,
		Instruction: instructions.Decode(dbg.c8.Mem.ReadWord(dbg.c8.CPU.PC)),
	}

	return terminal.Prompt{
		Type:    terminal.PromptTypeStep,
		Content: res.String(),
	}
}

// handleInterrupt processes a UserInterrupt. for a non-interactive
// inputter the debugger simply ends; an interactive user is asked for
// confirmation.
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if !inputter.IsInteractive() {
		dbg.running = false
		return
	}

	confirm := make([]byte, 1)
	_, err := inputter.TermRead(confirm,
		terminal.Prompt{
			Type:    terminal.PromptTypeConfirm,
			Content: "really quit (y/n) ",
		}, dbg.events)

	if err != nil {
		// a second interrupt is treated as though 'y' was pressed
		if curated.Is(err, terminal.UserInterrupt) {
			confirm[0] = 'y'
		} else {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}
