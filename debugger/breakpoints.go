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
	"fmt"

	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/commandline"
)

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	dbg    *Debugger
	breaks []breaker
}

// breaker defines a single break condition. the only break target in
// this machine is the program counter.
type breaker struct {
	addr uint16
}

func (bk breaker) String() string {
	return fmt.Sprintf("PC->%#04x", bk.addr)
}

// newBreakpoints is the preferred method of initialisation for the
// breakpoints type.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make([]breaker, 0, 10)
}

// isBreak returns whether a breakpoint is defined for the address.
func (bp *breakpoints) isBreak(addr uint16) bool {
	for _, bk := range bp.breaks {
		if bk.addr == addr {
			return true
		}
	}
	return false
}

// check returns a message describing the breakpoint that matches the
// address, or the empty string if none do.
func (bp *breakpoints) check(addr uint16) string {
	for _, bk := range bp.breaks {
		if bk.addr == addr {
			return fmt.Sprintf("break on %s", bk)
		}
	}
	return ""
}

// list currently defined breakpoints.
func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}

	bp.dbg.printLine(terminal.StyleFeedback, "breakpoints:")
	for i := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, bp.breaks[i])
	}
}

// parseBreakpoint adds a breakpoint from the tokenised arguments of the
// BREAK command.
func (bp *breakpoints) parseBreakpoint(tokens *commandline.Tokens) error {
	tok, _ := tokens.Get()

	addr, err := parseAddress(tok)
	if err != nil {
		return curated.Errorf("invalid breakpoint address (%s)", tok)
	}

	if bp.isBreak(addr) {
		return curated.Errorf("breakpoint at %#04x already exists", addr)
	}

	bp.breaks = append(bp.breaks, breaker{addr: addr})
	bp.dbg.printLine(terminal.StyleFeedback, "added breakpoint at %#04x", addr)

	return nil
}
