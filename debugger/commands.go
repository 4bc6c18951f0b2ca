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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherchip8/disassembly"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherchip8/hardware/keypad"
	"github.com/jetsetilly/gopherchip8/hardware/memory"
	"github.com/jetsetilly/gopherchip8/logger"
)

// the DISASM command lists a window of instructions around the target
// address, echoing how much context a person can take in at once. the
// window extends a little further backwards than forwards
const (
	disasmBack  = 22
	disasmAhead = 20
)

// number of bytes shown by the MEMORY command when no range is given
const memoryWindow = 64

// number of entries shown by LOG TAIL
const logTailLen = 10

// default filename for the MEMVIZ command
const memVizFilename = "memviz.dot"

// parseCommand tokenises the user input, validates it against the
// command template and dispatches it.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Remaining() == 0 {
		return nil
	}

	err := dbg.cmds.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	tokens.Reset()
	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			keyword = strings.ToUpper(keyword)
			txt, prs := helps[keyword]
			if prs {
				dbg.printLine(terminal.StyleHelp, txt)
			} else {
				dbg.printLine(terminal.StyleHelp, fmt.Sprintf("no help for %s", keyword))
			}
		} else {
			dbg.printLine(terminal.StyleHelp, dbg.cmds.String())
		}

	case cmdReset:
		err := dbg.attachCartridge(dbg.cartload)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdQuit:
		dbg.running = false

	case cmdRun:
		// step off the current address first, so that a breakpoint on
		// it does not halt the machine before it has started
		if dbg.breakpoints.isBreak(dbg.c8.CPU.PC) {
			err := dbg.c8.Step()
			if err != nil {
				return err
			}
		}
		dbg.runUntilHalt = true

	case cmdStep:
		return dbg.stepCommand(tokens)

	case cmdHalt:
		// the machine cannot be free-running while commands are being
		// dispatched. a ctrl-c does the halting in this debugger
		dbg.printLine(terminal.StyleFeedback, "machine is already halted")

	case cmdDisasm:
		pc := dbg.c8.CPU.PC
		if tok, ok := tokens.Get(); ok {
			addr, err := parseAddress(tok)
			if err != nil {
				return err
			}
			pc = addr
		}

		from := int(pc) - disasmBack
		if from < 0 {
			from = 0
		}
		to := int(pc) + disasmAhead
		if to > memory.Size-2 {
			to = memory.Size - 2
		}

		dsm := disassembly.FromMemory(dbg.c8.Mem)
		err := dsm.WriteRange(dbg.printStyle(terminal.StyleMachineInfo), uint16(from), uint16(to))
		if err != nil {
			return err
		}

	case cmdRegisters:
		dbg.printRegisters()

	case cmdMemory:
		var from, to int

		if tok, ok := tokens.Get(); ok {
			addr, err := parseAddress(tok)
			if err != nil {
				return err
			}
			from = int(addr)
			to = from + memoryWindow - 1

			if tok, ok := tokens.Get(); ok {
				addr, err := parseAddress(tok)
				if err != nil {
					return err
				}
				to = int(addr)
			}
		} else {
			// a window around the current program counter
			from = int(dbg.c8.CPU.PC) - 16
			to = from + memoryWindow - 1
		}

		if from < 0 {
			from = 0
		}
		if to > memory.Size-1 {
			to = memory.Size - 1
		}
		if to < from {
			return curated.Errorf("nothing to show between %#04x and %#04x", from, to)
		}

		dbg.printMemory(uint16(from), uint16(to))

	case cmdPeek:
		tok, _ := tokens.Get()
		addr, err := parseAddress(tok)
		if err != nil {
			return err
		}
		if int(addr) >= memory.Size {
			return curated.Errorf("address out of range (%#04x)", addr)
		}
		dbg.printLine(terminal.StyleMachineInfo, "%04x: %02x", addr, dbg.c8.Mem.Read(addr))

	case cmdPoke:
		tok, _ := tokens.Get()
		addr, err := parseAddress(tok)
		if err != nil {
			return err
		}

		if int(addr) >= memory.Size {
			return curated.Errorf("address out of range (%#04x)", addr)
		}

		tok, _ = tokens.Get()
		v, perr := strconv.ParseUint(tok, 0, 8)
		if perr != nil {
			return curated.Errorf("invalid value (%s)", tok)
		}

		dbg.c8.Mem.Write(addr, uint8(v))
		dbg.printLine(terminal.StyleFeedback, "%04x: %02x", addr, uint8(v))

	case cmdScreen:
		dbg.printLine(terminal.StyleMachineInfo, dbg.c8.Screen.String())

	case cmdKey:
		tok, _ := tokens.Get()
		v, err := strconv.ParseUint(tok, 0, 8)
		if err != nil || v >= keypad.NumKeys {
			return curated.Errorf("invalid key (%s)", tok)
		}

		if _, ok := tokens.Get(); ok {
			// the only keyword that can follow the key value is UP
			dbg.c8.Keypad.Release(uint8(v))
			dbg.printLine(terminal.StyleFeedback, "key %01x up", v)
		} else {
			dbg.c8.Keypad.Press(uint8(v))
			dbg.printLine(terminal.StyleFeedback, "key %01x down", v)
		}

	case cmdFreq:
		if tok, ok := tokens.Get(); ok {
			hz, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return curated.Errorf("invalid frequency (%s)", tok)
			}
			dbg.lmtr.SetRate(float32(hz))
		}
		dbg.printLine(terminal.StyleFeedback, "%.0fhz (actual %.0fhz)", dbg.lmtr.Rate(), dbg.lmtr.Actual())

	case cmdBreak:
		return dbg.breakpoints.parseBreakpoint(tokens)

	case cmdList:
		dbg.breakpoints.list()

	case cmdClear:
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdLog:
		option, ok := tokens.Get()
		if !ok {
			logger.Write(dbg.printStyle(terminal.StyleLog))
			return nil
		}

		switch strings.ToUpper(option) {
		case "ECHO":
			if dbg.logEcho {
				logger.SetEcho(nil)
				dbg.logEcho = false
				dbg.printLine(terminal.StyleFeedback, "log echo off")
			} else {
				logger.SetEcho(dbg.printStyle(terminal.StyleLog))
				dbg.logEcho = true
				dbg.printLine(terminal.StyleFeedback, "log echo on")
			}
		case "TAIL":
			logger.Tail(dbg.printStyle(terminal.StyleLog), logTailLen)
		case "CLEAR":
			logger.Clear()
		}

	case cmdMemViz:
		fn := memVizFilename
		if tok, ok := tokens.Get(); ok {
			fn = tok
		}

		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()

		memviz.Map(f, dbg.c8)
		dbg.printLine(terminal.StyleFeedback, "machine state written to %s", fn)
	}

	return nil
}

// stepCommand handles the variations of the STEP command. the plain form
// steps a single instruction; a numeric argument steps that many
// instructions; STEP OVER treats a subroutine call as a single step.
func (dbg *Debugger) stepCommand(tokens *commandline.Tokens) error {
	tok, ok := tokens.Get()

	if ok {
		if strings.ToUpper(tok) == "OVER" {
			return dbg.stepOver()
		}

		n, err := strconv.ParseUint(tok, 0, 16)
		if err != nil || n == 0 {
			return curated.Errorf("invalid step count (%s)", tok)
		}

		for i := uint64(0); i < n; i++ {
			err := dbg.c8.Step()
			if err != nil {
				return err
			}

			if msg := dbg.breakpoints.check(dbg.c8.CPU.PC); msg != "" {
				dbg.printLine(terminal.StyleFeedback, msg)
				break
			}
		}
	} else {
		err := dbg.c8.Step()
		if err != nil {
			return err
		}
	}

	dbg.printLine(terminal.StyleMachineStep, dbg.c8.LastResult.String())
	return nil
}

// stepOver runs a subroutine to completion, treating the call as though
// it was a single instruction. any other instruction steps as normal.
func (dbg *Debugger) stepOver() error {
	ins := instructions.Decode(dbg.c8.Mem.ReadWord(dbg.c8.CPU.PC))

	if ins.Defn.Operator != instructions.Call {
		err := dbg.c8.Step()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleMachineStep, dbg.c8.LastResult.String())
		return nil
	}

	// run until the program counter reaches the instruction after the
	// call
	target := dbg.c8.CPU.PC + 2

	err := dbg.c8.Step()
	if err != nil {
		return err
	}

	for dbg.c8.CPU.PC != target {
		// the subroutine may never return so make sure a ctrl-c can cut
		// it short
		select {
		case <-dbg.events.IntEvents:
			dbg.printLine(terminal.StyleFeedback, "step over interrupted")
			return nil
		default:
		}

		if msg := dbg.breakpoints.check(dbg.c8.CPU.PC); msg != "" {
			dbg.printLine(terminal.StyleFeedback, msg)
			return nil
		}

		err = dbg.c8.Step()
		if err != nil {
			return err
		}
	}

	dbg.printLine(terminal.StyleMachineStep, dbg.c8.LastResult.String())
	return nil
}

// printRegisters shows the register file, including the timers.
func (dbg *Debugger) printRegisters() {
	dbg.printLine(terminal.StyleMachineInfo, dbg.c8.CPU.String())
	dbg.printLine(terminal.StyleMachineInfo, "DT=%02x ST=%02x", dbg.c8.Timers.Delay, dbg.c8.Timers.Sound)
}

// printMemory shows a hex dump of memory between the two addresses,
// inclusive at both ends. rows are aligned to 16 byte boundaries.
func (dbg *Debugger) printMemory(from uint16, to uint16) {
	s := strings.Builder{}

	for base := from & 0xfff0; base <= to; base += 16 {
		s.WriteString(fmt.Sprintf("%04x: ", base))
		for i := uint16(0); i < 16; i++ {
			a := base + i
			if a < from || a > to {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf("%02x ", dbg.c8.Mem.Read(a)))
			}
		}
		s.WriteString("\n")
	}

	dbg.printLine(terminal.StyleMachineInfo, "%s", s.String())
}

// parseAddress converts a token to a 16-bit address. decimal, 0x and $
// notation are all accepted.
func parseAddress(s string) (uint16, error) {
	var addr uint64
	var err error

	// a $ prefix is common in CHIP8 listings and means the same as 0x
	if strings.HasPrefix(s, "$") {
		addr, err = strconv.ParseUint(s[1:], 16, 16)
	} else {
		addr, err = strconv.ParseUint(s, 0, 16)
	}

	if err != nil {
		return 0, curated.Errorf("invalid address (%s)", s)
	}
	return uint16(addr), nil
}
