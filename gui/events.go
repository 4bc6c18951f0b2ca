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

package gui

// Events are the things that happen in the gui as a result of user
// interaction. They are sent over the channel registered with the
// ReqSetEventChan request.

// Event is sent over the registered event channel. The underlying type
// will be one of the Event types below.
type Event interface{}

// EventQuit is sent when the user closes the window.
type EventQuit struct{}

// EventKeyboard is sent on a key press or release. Key is the SDL name of
// the key, which for the printable keys is the character itself in upper
// case.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// KeyMod identifies the modifier key held during an EventKeyboard.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)
