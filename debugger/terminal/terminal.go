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

// Package terminal defines the operations required for command line
// interaction with the debugger.
//
// For flexibility, terminal interaction is split over two interfaces,
// Input and Output. The Terminal interface embeds both and adds some
// housekeeping functions. In practice, the debugger is only interested
// in the Terminal interface; implementations of which can be found in
// the plainterm and colorterm sub-packages.
package terminal

import (
	"os"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the number of characters read into the buffer.
	//
	// If possible the TermRead() implementation should check the
	// ReadEvents channels for activity while waiting for input. Not all
	// implementations will be able to because of the context in which
	// they operate.
	TermRead(buffer []byte, prompt Prompt, events *ReadEvents) (int, error)

	// TermReadCheck returns true if there is input waiting to be read.
	// Implementations that cannot know this should return false.
	TermReadCheck() bool

	// IsInteractive returns true for implementations that expect a human
	// at the other end.
	IsInteractive() bool
}

// Sentinal errors returned by TermRead() if caught whilst waiting for
// input. Terminal implementations that cannot catch these conditions
// rely on the debugger's own signal handling.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command
// line interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do
	// anything here.
	Initialise() error

	// Restore the terminal to its original state as best as possible.
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// not all implementations can make use of one.
	RegisterTabCompletion(TabCompletion)

	// Silence all output except error messages. TermPrintLine()
	// implementations should still display StyleError when silenced.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. A
// good implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
