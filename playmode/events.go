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
)

// handleEvent processes a single event from the gui. returns false when
// the playmode session should end.
func (pl *playmode) handleEvent(ev gui.Event) bool {
	switch ev := ev.(type) {
	case gui.EventQuit:
		return false
	case gui.EventKeyboard:
		return pl.handleKeyboard(ev)
	}
	return true
}
