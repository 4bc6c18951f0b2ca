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

package colorterm

import (
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	// ctrl-c is delivered as a normal input rune while the terminal is
	// in raw mode. the IntEvents channel only triggers when a signal
	// arrives from outside of the terminal.
	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	inputLen := 0
	cursorPos := 0
	historyIdx := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll
	// through history entries
	buffInput := make([]byte, 0, cap(input))

	// the prompt is redrawn every iteration of the loop. the cursor
	// position is stored at the top of the loop and restored after the
	// redraw, so it must be placed correctly before the loop begins
	promptStr := prompt.String()
	ct.TermPrint("\r%s", ansi.CursorMove(len(promptStr)))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrint("%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], promptStr, ansi.NormalPen)
		ct.TermPrint(string(input[:inputLen]))
		ct.TermPrint(ansi.CursorRestore)

		var rr readRune

		select {
		case rr = <-ct.reader:
		case <-intEvents:
			ct.TermPrint("\n")
			return inputLen + 1, curated.Errorf(terminal.UserInterrupt)
		}

		if rr.err != nil {
			return inputLen, rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursorPos]))

				// the difference in length between the new input and
				// the old input
				d := len(s) - cursorPos

				if inputLen+d <= len(input) {
					// append everything after the cursor to the new
					// string and copy into the input buffer
					s += string(input[cursorPos:inputLen])
					copy(input, s)

					// advance cursor to the end of the completed word
					ct.TermPrint(ansi.CursorMove(d))
					cursorPos += d
					inputLen += d
				}
			}

		case easyterm.KeyInterrupt:
			// CTRL-C
			ct.TermPrint("\n")
			return inputLen + 1, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// CARRIAGE RETURN

			// check to see if input is the same as the last history
			// entry. we don't want duplicate, consecutive entries
			newEntry := false
			if inputLen > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastEntry) == inputLen {
						newEntry = false
						for i := 0; i < inputLen; i++ {
							if input[i] != lastEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			if newEntry {
				nh := make([]byte, inputLen)
				copy(nh, input[:inputLen])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.TermPrint("\n")
			return inputLen + 1, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			rr = <-ct.reader
			if rr.err != nil {
				return inputLen, rr.err
			}

			if rr.r == easyterm.EscCursor {
				// CURSOR KEY
				rr = <-ct.reader
				if rr.err != nil {
					return inputLen, rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history
						// then store the current input so it can be
						// restored by a subsequent cursor down
						if historyIdx == len(ct.commandHistory) {
							buffInput = buffInput[:inputLen]
							copy(buffInput, input[:inputLen])
						}

						if historyIdx > 0 {
							historyIdx--
							copy(input, ct.commandHistory[historyIdx].input)
							inputLen = len(ct.commandHistory[historyIdx].input)
							ct.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					}

				case easyterm.CursorDown:
					// move down through command history
					if historyIdx < len(ct.commandHistory)-1 {
						historyIdx++
						copy(input, ct.commandHistory[historyIdx].input)
						inputLen = len(ct.commandHistory[historyIdx].input)
						ct.TermPrint(ansi.CursorMove(inputLen - cursorPos))
						cursorPos = inputLen
					} else if historyIdx == len(ct.commandHistory)-1 {
						// end of command history. restore the input
						// that was stashed by the first cursor up
						historyIdx++
						copy(input, buffInput)
						inputLen = len(buffInput)
						ct.TermPrint(ansi.CursorMove(inputLen - cursorPos))
						cursorPos = inputLen
					}

				case easyterm.CursorForward:
					// move forward through current input
					if cursorPos < inputLen {
						ct.TermPrint(ansi.CursorForwardOne)
						cursorPos++
					}

				case easyterm.CursorBackward:
					// move backward through current input
					if cursorPos > 0 {
						ct.TermPrint(ansi.CursorBackwardOne)
						cursorPos--
					}

				case easyterm.CursorHome:
					ct.TermPrint(ansi.CursorMove(-cursorPos))
					cursorPos = 0

				case easyterm.CursorEnd:
					ct.TermPrint(ansi.CursorMove(inputLen - cursorPos))
					cursorPos = inputLen

				case easyterm.CursorDelete:
					// DELETE. consume the trailing tilde of the escape
					// sequence before altering the input
					rr = <-ct.reader
					if rr.err != nil {
						return inputLen, rr.err
					}

					if cursorPos < inputLen {
						copy(input[cursorPos:], input[cursorPos+1:inputLen])
						inputLen--

						// make sure history scrolling begins from the
						// most recent command
						historyIdx = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDel:
			// BACKSPACE
			if cursorPos > 0 {
				copy(input[cursorPos-1:], input[cursorPos:inputLen])
				ct.TermPrint(ansi.CursorBackwardOne)
				cursorPos--
				inputLen--

				// make sure history scrolling begins from the most
				// recent command
				historyIdx = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) {
				m := utf8.EncodeRune(er, rr.r)

				// silently drop input that would overflow the buffer
				if inputLen+m <= len(input) {
					ct.TermPrint("%c", rr.r)

					// insert new character into the input buffer at
					// the current cursor position
					copy(input[cursorPos+m:], input[cursorPos:inputLen])
					copy(input[cursorPos:], er[:m])
					cursorPos += m
					inputLen += m

					// make sure history scrolling begins from the most
					// recent command
					historyIdx = len(ct.commandHistory)
				}
			}
		}
	}
}
