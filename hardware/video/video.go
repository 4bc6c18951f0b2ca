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

// Package video implements the monochrome framebuffer of the machine. The
// screen is a fixed grid of 32 rows by 64 columns; a pixel is either lit
// or unlit. Sprites are blitted by XOR, which is how the machine detects
// collisions between sprites.
package video

import "strings"

// Dimensions of the screen.
const (
	Rows = 32
	Cols = 64
)

// Screen is the framebuffer of the machine.
type Screen struct {
	pixels [Rows][Cols]bool

	// incremented on every mutation of the framebuffer. renderers can
	// compare against the value from their previous visit to decide
	// whether anything needs redrawing
	frame int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{}
}

// Reset the screen to all pixels unlit.
func (scr *Screen) Reset() {
	scr.Clear()
}

// Clear every pixel on the screen.
func (scr *Screen) Clear() {
	for y := range scr.pixels {
		for x := range scr.pixels[y] {
			scr.pixels[y][x] = false
		}
	}
	scr.frame++
}

// DrawSprite blits a sprite onto the screen at the given coordinates, one
// byte per row, most significant bit leftmost. Coordinates wrap per pixel,
// not per sprite: a sprite drawn at the right edge continues at the left
// edge of the same rows.
//
// Only set bits in the sprite touch the screen. Each one is XORed onto its
// pixel and the collision result for that pixel recorded: the returned flag
// is the result for the last set bit processed, and ok is false when the
// sprite contained no set bits at all (in which case the flag register must
// be left alone). Reporting only the final pixel differs from emulators
// that OR the collisions together but it is how this machine has always
// behaved and the flag is bit-accurate to it.
func (scr *Screen) DrawSprite(x uint8, y uint8, sprite []uint8) (uint8, bool) {
	var collision uint8
	var touched bool

	for row, line := range sprite {
		for col := 0; col < 8; col++ {
			if line&(0x80>>col) == 0 {
				continue
			}

			py := (int(y) + row) % Rows
			px := (int(x) + col) % Cols

			if scr.pixels[py][px] {
				scr.pixels[py][px] = false
				collision = 1
			} else {
				scr.pixels[py][px] = true
				collision = 0
			}
			touched = true
		}
	}

	if touched {
		scr.frame++
	}

	return collision, touched
}

// Pixel returns the state of the pixel at the given coordinates. Coordinates
// outside the screen are unlit.
func (scr *Screen) Pixel(row int, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return scr.pixels[row][col]
}

// Frame returns the current value of the mutation counter.
func (scr *Screen) Frame() int {
	return scr.frame
}

// Snapshot returns a copy of the framebuffer.
func (scr *Screen) Snapshot() [Rows][Cols]bool {
	return scr.pixels
}

// String returns the screen as text, one line per row, lit pixels drawn
// with a hash.
func (scr *Screen) String() string {
	s := strings.Builder{}
	for y := range scr.pixels {
		for x := range scr.pixels[y] {
			if scr.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
