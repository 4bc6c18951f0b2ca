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
	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/emulation"
	"github.com/jetsetilly/gopherchip8/gui"
)

// SetFeature implements the gui.GUI interface.
//
// MUST be called from the main goroutine.
func (scr *SdlScreen) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (rerr error) {
	// the type assertions in the case clauses will panic if the wrong
	// type of argument has been sent. recover and wrap in a curated error
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf("sdlscreen: %v", r)
		}
	}()

	var err error

	switch request {
	case gui.ReqSetEmulation:
		scr.emu = args[0].(*emulation.Emulation)
		scr.lastFrame = -1

	case gui.ReqSetEventChan:
		scr.eventChannel = args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}
		scr.lastFrame = -1

	case gui.ReqSetTitle:
		scr.title = args[0].(string)
		scr.updateTitle()

	case gui.ReqSetPause:
		scr.paused = args[0].(bool)
		scr.updateTitle()

	case gui.ReqSetScale:
		err = scr.setScaling(args[0].(float32))
		scr.lastFrame = -1

	case gui.ReqIncScale:
		err = scr.setScaling(scr.scale + scaleStep)
		scr.lastFrame = -1

	case gui.ReqDecScale:
		err = scr.setScaling(scr.scale - scaleStep)
		scr.lastFrame = -1

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return err
}

// SetFeatureNoError implements the gui.GUI interface.
//
// MUST be called from the main goroutine.
func (scr *SdlScreen) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = scr.SetFeature(request, args...)
}

// GetFeature implements the gui.GUI interface.
func (scr *SdlScreen) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqSetScale:
		return scr.scale, nil
	case gui.ReqSetPause:
		return scr.paused, nil
	}
	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}
