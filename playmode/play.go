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

// Package playmode is the "just play the game" mode of the emulator. No
// debugging, no disassembly, just the machine in a window.
//
// The emulation runs in its own goroutine, looked after by the emulation
// package. Playmode itself keeps to the main goroutine, servicing the SDL
// window and feeding keyboard events to the machine.
package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/emulation"
	"github.com/jetsetilly/gopherchip8/gui"
	"github.com/jetsetilly/gopherchip8/gui/sdlscreen"
	"github.com/jetsetilly/gopherchip8/hardware/chip8"
)

// how long the service loop sleeps between window updates. the window is
// redrawn at roughly sixty frames per second, the same rate the timers
// decay at
const frameSleep = 16 * time.Millisecond

type playmode struct {
	emu      *emulation.Emulation
	scr      *sdlscreen.SdlScreen
	cartload *cartridgeloader.Loader
	paused   bool
}

// Play loads the cartridge and runs it until the user quits.
//
// MUST be called from the main goroutine.
func Play(cartload *cartridgeloader.Loader, scale float32, freq float32, fpsCap bool) error {
	c8 := chip8.NewChip8()

	err := c8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	scr, err := sdlscreen.NewSdlScreen()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	emu := emulation.NewEmulation(c8)
	defer emu.End()

	if freq > 0 {
		emu.SetFrequency(freq)
	}
	emu.SetLimit(fpsCap)

	guiChannel := make(chan gui.Event, 64)
	scr.SetFeatureNoError(gui.ReqSetEmulation, emu)
	scr.SetFeatureNoError(gui.ReqSetEventChan, guiChannel)
	scr.SetFeatureNoError(gui.ReqSetTitle, cartload.ShortName())
	if scale > 0 {
		err = scr.SetFeature(gui.ReqSetScale, scale)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}
	scr.SetFeatureNoError(gui.ReqSetVisibility, true)

	// a ctrl-c in the launching terminal quits as cleanly as closing the
	// window does
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	pl := &playmode{emu: emu, scr: scr, cartload: cartload}

	emu.Start()

	running := true
	for running {
		scr.Service()

		select {
		case <-intChan:
			running = false
		case ev := <-guiChannel:
			running = pl.handleEvent(ev)
		default:
		}

		err = scr.Render()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		time.Sleep(frameSleep)
	}

	return nil
}

func (pl *playmode) setPaused(paused bool) {
	pl.paused = paused
	if paused {
		pl.emu.Pause()
	} else {
		pl.emu.Start()
	}
	pl.scr.SetFeatureNoError(gui.ReqSetPause, paused)
}
