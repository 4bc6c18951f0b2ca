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

// Package sdlscreen is the SDL implementation of the gui interface. One
// machine pixel becomes a square of host pixels, white on black.
//
// SDL is not thread safe so everything in this package must be called
// from the same goroutine, conventionally the main goroutine. The
// emulation itself runs elsewhere; Render() only takes a read view of the
// machine for long enough to copy the framebuffer.
package sdlscreen

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/emulation"
	"github.com/jetsetilly/gopherchip8/gui"
	"github.com/jetsetilly/gopherchip8/hardware/chip8"
	"github.com/jetsetilly/gopherchip8/hardware/video"
)

// the number of bytes per pixel in the texture.
const pixelDepth = 4

// pixel scaling limits. scale is the side length of the square of host
// pixels that one machine pixel becomes.
const (
	defaultScale float32 = 12.0
	minScale     float32 = 2.0
	maxScale     float32 = 32.0
	scaleStep    float32 = 2.0
)

// SdlScreen is the SDL implementation of the gui interface.
type SdlScreen struct {
	emu *emulation.Emulation

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the texture pixels, four bytes per machine pixel
	pixels []byte

	scale  float32
	title  string
	paused bool

	eventChannel chan gui.Event

	// the framebuffer generation most recently rendered. -1 forces a
	// redraw on the next Render()
	lastFrame int
}

// NewSdlScreen is the preferred method of initialisation for the
// SdlScreen type. The window starts hidden; show it with a
// ReqSetVisibility request.
//
// MUST be called from the main goroutine.
func NewSdlScreen() (*SdlScreen, error) {
	scr := &SdlScreen{
		scale:     defaultScale,
		pixels:    make([]byte, video.Rows*video.Cols*pixelDepth),
		lastFrame: -1,
	}

	// opaque black until the first frame arrives
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// nearest neighbour scaling. anything smoother blurs the pixels
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	scr.window, err = sdl.CreateWindow("GopherChip8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(video.Cols)*scr.scale), int32(float32(video.Rows)*scr.scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, int32(video.Cols), int32(video.Rows))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	return scr, nil
}

// Destroy the window and release SDL. The SdlScreen must not be used
// after Destroy.
func (scr *SdlScreen) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// Render the machine's framebuffer if it has changed since the last call.
//
// MUST be called from the main goroutine.
func (scr *SdlScreen) Render() error {
	if scr.emu == nil {
		return nil
	}

	redraw := false
	_ = scr.emu.View(func(c8 *chip8.Chip8) error {
		if c8.Screen.Frame() == scr.lastFrame {
			return nil
		}
		scr.lastFrame = c8.Screen.Frame()
		scr.plot(c8.Screen.Snapshot())
		redraw = true
		return nil
	})
	if !redraw {
		return nil
	}

	err := scr.texture.Update(nil, scr.pixels, video.Cols*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	scr.renderer.Present()

	return nil
}

// copy a framebuffer snapshot into the texture pixels.
func (scr *SdlScreen) plot(pixels [video.Rows][video.Cols]bool) {
	i := 0
	for y := 0; y < video.Rows; y++ {
		for x := 0; x < video.Cols; x++ {
			var v byte
			if pixels[y][x] {
				v = 255
			}
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
			scr.pixels[i+3] = 255
			i += pixelDepth
		}
	}
}

func (scr *SdlScreen) setScaling(scale float32) error {
	if scale < minScale {
		scale = minScale
	}
	if scale > maxScale {
		scale = maxScale
	}
	scr.scale = scale
	scr.window.SetSize(int32(float32(video.Cols)*scale), int32(float32(video.Rows)*scale))
	return nil
}

func (scr *SdlScreen) updateTitle() {
	t := scr.title
	if t == "" {
		t = "GopherChip8"
	}
	if scr.paused {
		t = fmt.Sprintf("%s (paused)", t)
	}
	scr.window.SetTitle(t)
}
