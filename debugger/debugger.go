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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherchip8/emulation"
	"github.com/jetsetilly/gopherchip8/hardware/chip8"
	"github.com/jetsetilly/gopherchip8/logger"
	"github.com/jetsetilly/gopherchip8/version"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	c8 *chip8.Chip8

	// the most recently attached cartridge. kept so that the RESET
	// command can reattach it
	cartload *cartridgeloader.Loader

	// the pace of the machine when it is free-running
	lmtr *emulation.Limiter

	// the terminal the debugger is communicating through
	term terminal.Terminal

	// events the terminal should respond to while waiting for input
	events *terminal.ReadEvents

	// the compiled command template and the tab completion built from it
	cmds          *commandline.Commands
	tabcompletion *commandline.TabCompletion

	breakpoints *breakpoints

	// buffer for user input
	input []byte

	// the debugger is to continue until this is false
	running bool

	// the machine free-runs until a halt condition is met
	runUntilHalt bool

	// log entries are echoed to the terminal as they arrive
	logEcho bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The featureset of the terminal decides the featureset of the
// debugger. A freq of zero or less selects the default frequency.
func NewDebugger(term terminal.Terminal, freq float32) (*Debugger, error) {
	dbg := &Debugger{
		c8:    chip8.NewChip8(),
		term:  term,
		input: make([]byte, 255),
	}

	var err error

	dbg.cmds, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	err = dbg.cmds.AddHelp(cmdHelp)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg.tabcompletion = commandline.NewTabCompletion(dbg.cmds)

	dbg.breakpoints = newBreakpoints(dbg)

	if freq <= 0 {
		freq = emulation.DefaultFrequency
	}
	dbg.lmtr = emulation.NewLimiter(freq)

	return dbg, nil
}

// Start the main debugger sequence. Returns when the user quits or when
// the terminal input is exhausted.
func (dbg *Debugger) Start(cartload *cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(dbg.tabcompletion)

	// interrupt signals are received while the machine is free-running
	// and while the terminal is waiting for input
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	dbg.events = &terminal.ReadEvents{IntEvents: intChan}

	err = dbg.attachCartridge(cartload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	ver, _, _ := version.Version()
	dbg.printLine(terminal.StyleFeedback, "%s %s", version.ApplicationName, ver)
	dbg.printLine(terminal.StyleFeedback, "loaded %s", cartload.ShortName())

	dbg.running = true
	err = dbg.inputLoop(dbg.term)

	// stop the echoing of log entries in case a future debugger is
	// started with a different terminal
	if dbg.logEcho {
		logger.SetEcho(nil)
	}

	dbg.lmtr.Stop()

	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	return nil
}

// attachCartridge to the machine. The loader is kept for subsequent
// RESET commands.
func (dbg *Debugger) attachCartridge(cartload *cartridgeloader.Loader) error {
	err := dbg.c8.AttachCartridge(cartload)
	if err != nil {
		return err
	}
	dbg.cartload = cartload
	return nil
}
