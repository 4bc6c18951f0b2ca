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

package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherchip8/gui"
)

// Service drains the SDL event queue, translating anything of interest
// onto the registered event channel. Must be called frequently or the
// window becomes unresponsive.
//
// MUST be called from the main goroutine.
func (scr *SdlScreen) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if scr.eventChannel == nil {
			continue
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			// key repeats are of no use to the machine
			if ev.Repeat != 0 {
				continue
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0 {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0 {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0 {
				mod = gui.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				scr.send(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true,
					Mod:  mod,
				})
			case sdl.KEYUP:
				scr.send(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false,
					Mod:  mod,
				})
			}
		}
	}
}

// non-blocking send. the channel consumer runs on this same goroutine so
// blocking here would deadlock. the channel is generously buffered and a
// human cannot type fast enough to fill it
func (scr *SdlScreen) send(ev gui.Event) {
	select {
	case scr.eventChannel <- ev:
	default:
	}
}
