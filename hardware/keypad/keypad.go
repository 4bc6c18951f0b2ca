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

// Package keypad implements the sixteen key input device of the machine.
// Keys are numbered 0 to 15, after the hexadecimal labels on the original
// keypads. Mapping from host input (keyboard scancodes, debugger commands)
// to key numbers is the concern of the caller; this package only latches
// key state.
package keypad

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad latches the pressed state of the sixteen keys.
type Keypad struct {
	keys [NumKeys]bool

	// the most recently pressed key. recorded on press only; releasing a
	// key does not disturb it
	lastPressed uint8
	anyPressed  bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset the keypad to no keys pressed.
func (pad *Keypad) Reset() {
	for i := range pad.keys {
		pad.keys[i] = false
	}
	pad.anyPressed = false
	pad.lastPressed = 0
}

// Press the numbered key. Returns false, changing nothing, for a key
// number outside the keypad; the caller can then route the event
// elsewhere.
func (pad *Keypad) Press(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	pad.keys[key] = true
	pad.lastPressed = key
	pad.anyPressed = true
	return true
}

// Release the numbered key. Returns false, changing nothing, for a key
// number outside the keypad.
func (pad *Keypad) Release(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	pad.keys[key] = false
	return true
}

// IsPressed returns true if the numbered key is currently pressed. Key
// numbers outside the keypad are never pressed.
func (pad *Keypad) IsPressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return pad.keys[key]
}

// Poll scans the keypad for a pressed key. If several keys are pressed at
// once the highest numbered key wins, a consequence of the scan running in
// ascending order and keeping the last hit. Returns false if no key is
// pressed.
func (pad *Keypad) Poll() (uint8, bool) {
	var k uint8
	var ok bool
	for i := 0; i < NumKeys; i++ {
		if pad.keys[i] {
			k = uint8(i)
			ok = true
		}
	}
	return k, ok
}

// LastPressed returns the most recently pressed key. Returns false if no
// key has been pressed since the last reset.
func (pad *Keypad) LastPressed() (uint8, bool) {
	return pad.lastPressed, pad.anyPressed
}
