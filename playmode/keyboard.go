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

package playmode

import (
	"github.com/jetsetilly/gopherchip8/gui"
	"github.com/jetsetilly/gopherchip8/hardware/chip8"
)

// the machine's hex pad mapped onto the left hand side of a modern
// keyboard:
//
//	1 2 3 4         1 2 3 C
//	Q W E R   --->  4 5 6 D
//	A S D F         7 8 9 E
//	Z X C V         A 0 B F
var keypadMap = map[string]uint8{
	"1": 0x01, "2": 0x02, "3": 0x03, "4": 0x0c,
	"Q": 0x04, "W": 0x05, "E": 0x06, "R": 0x0d,
	"A": 0x07, "S": 0x08, "D": 0x09, "F": 0x0e,
	"Z": 0x0a, "X": 0x00, "C": 0x0b, "V": 0x0f,
}

// handleKeyboard processes a keyboard event, either as an emulator
// control or as a keypad press. returns false when the playmode session
// should end.
func (pl *playmode) handleKeyboard(ev gui.EventKeyboard) bool {
	// control keys take precedence over the keypad. ctrl-q would
	// otherwise be swallowed by pad key 4
	if ev.Mod == gui.KeyModCtrl {
		if ev.Down && ev.Key == "Q" {
			return false
		}
		return true
	}

	if ev.Down {
		switch ev.Key {
		case "Escape":
			return false
		case "Space":
			pl.setPaused(!pl.paused)
			return true
		case "F2":
			// rerun the program from the beginning. the loader keeps the
			// program bytes so there is no return to the filesystem
			_ = pl.emu.Do(func(c8 *chip8.Chip8) error {
				return c8.AttachCartridge(pl.cartload)
			})
			return true
		case "=":
			pl.scr.SetFeatureNoError(gui.ReqIncScale)
			return true
		case "-":
			pl.scr.SetFeatureNoError(gui.ReqDecScale)
			return true
		}
	}

	k, ok := keypadMap[ev.Key]
	if !ok {
		return true
	}

	_ = pl.emu.Do(func(c8 *chip8.Chip8) error {
		if ev.Down {
			c8.Keypad.Press(k)
		} else {
			c8.Keypad.Release(k)
		}
		return nil
	})

	return true
}
