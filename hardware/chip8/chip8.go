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

// Package chip8 assembles the components of the machine and runs the
// fetch-decode-execute cycle. Coordination of the machine with the outside
// world (pacing, threading, input routing) is the concern of the emulation
// package; everything in this package is synchronous.
package chip8

import (
	"time"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/hardware/cpu"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherchip8/hardware/keypad"
	"github.com/jetsetilly/gopherchip8/hardware/memory"
	"github.com/jetsetilly/gopherchip8/hardware/timers"
	"github.com/jetsetilly/gopherchip8/hardware/video"
	"github.com/jetsetilly/gopherchip8/random"
)

// Chip8 is the machine itself. The component fields are public for the
// benefit of the debugger and the renderers; the fetch-decode-execute
// cycle in this package is the only code that should be mutating them
// while the machine is running.
type Chip8 struct {
	Mem    *memory.Memory
	CPU    *cpu.CPU
	Screen *video.Screen
	Keypad *keypad.Keypad
	Timers *timers.Timers
	Rand   *random.Random

	// the most recently fetched instruction and where it came from
	LastResult execution.Result
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
func NewChip8() *Chip8 {
	c8 := &Chip8{
		Mem:    memory.NewMemory(),
		CPU:    cpu.NewCPU(),
		Screen: video.NewScreen(),
		Keypad: keypad.NewKeypad(),
		Timers: timers.NewTimers(),
		Rand:   random.NewRandom(),
	}
	return c8
}

// Reset the machine to its power-on state. The font is reloaded; any
// attached program is erased.
func (c8 *Chip8) Reset() {
	c8.Mem.Reset()
	c8.CPU.Reset()
	c8.Screen.Reset()
	c8.Keypad.Reset()
	c8.Timers.Reset(time.Now())
}

// AttachCartridge loads a program into the machine, resetting the machine
// first. An error from the loader leaves the machine in its reset state
// with no program attached.
func (c8 *Chip8) AttachCartridge(cartload *cartridgeloader.Loader) error {
	c8.Reset()

	err := cartload.Load()
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	c8.Mem.Load(cartload.Data)

	return nil
}

// Run the machine until continueCheck instructs otherwise. continueCheck
// is consulted after every instruction; a nil continueCheck runs one
// instruction and stops. There is no pacing here at all, the machine runs
// as fast as the host allows.
func (c8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return false, nil }
	}

	for {
		err := c8.Step()
		if err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
