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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip8/hardware/video"
	"github.com/jetsetilly/gopherchip8/test"
)

func TestDrawSprite(t *testing.T) {
	scr := video.NewScreen()

	// a full row sprite on an empty screen lights eight pixels with no
	// collision
	vf, ok := scr.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectedSuccess(t, ok)
	test.Equate(t, vf, 0)
	for x := 0; x < 8; x++ {
		test.ExpectedSuccess(t, scr.Pixel(0, x))
	}
	test.ExpectedFailure(t, scr.Pixel(0, 8))

	// the identical sprite at the same location clears those pixels and
	// reports the collision
	vf, ok = scr.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectedSuccess(t, ok)
	test.Equate(t, vf, 1)
	for x := 0; x < 8; x++ {
		test.ExpectedFailure(t, scr.Pixel(0, x))
	}
}

func TestDrawSpriteWrap(t *testing.T) {
	scr := video.NewScreen()

	// a sprite drawn over the right edge wraps to the left edge of the
	// same row
	vf, ok := scr.DrawSprite(62, 0, []uint8{0xff})
	test.ExpectedSuccess(t, ok)
	test.Equate(t, vf, 0)
	test.ExpectedSuccess(t, scr.Pixel(0, 62))
	test.ExpectedSuccess(t, scr.Pixel(0, 63))
	test.ExpectedSuccess(t, scr.Pixel(0, 0))
	test.ExpectedSuccess(t, scr.Pixel(0, 5))
	test.ExpectedFailure(t, scr.Pixel(0, 6))

	// and a sprite drawn over the bottom edge wraps to the top
	scr.Clear()
	_, _ = scr.DrawSprite(0, 31, []uint8{0x80, 0x80})
	test.ExpectedSuccess(t, scr.Pixel(31, 0))
	test.ExpectedSuccess(t, scr.Pixel(0, 0))
}

func TestDrawSpriteCollisionIsLastPixel(t *testing.T) {
	scr := video.NewScreen()

	// light the leftmost pixel of the top row
	_, _ = scr.DrawSprite(0, 0, []uint8{0x80})

	// 0xc0 collides on its first pixel but not its second. the reported
	// flag follows the final pixel drawn
	vf, ok := scr.DrawSprite(0, 0, []uint8{0xc0})
	test.ExpectedSuccess(t, ok)
	test.Equate(t, vf, 0)

	// mirrored arrangement: collision on the final pixel
	scr.Clear()
	_, _ = scr.DrawSprite(1, 0, []uint8{0x80})
	vf, _ = scr.DrawSprite(0, 0, []uint8{0xc0})
	test.Equate(t, vf, 1)
}

func TestDrawSpriteEmpty(t *testing.T) {
	scr := video.NewScreen()

	// a sprite with no set bits touches nothing and reports nothing
	f := scr.Frame()
	_, ok := scr.DrawSprite(0, 0, []uint8{0x00, 0x00})
	test.ExpectedFailure(t, ok)
	test.Equate(t, scr.Frame(), f)
}

func TestClear(t *testing.T) {
	scr := video.NewScreen()
	_, _ = scr.DrawSprite(10, 10, []uint8{0xff, 0xff})
	scr.Clear()
	for y := 0; y < video.Rows; y++ {
		for x := 0; x < video.Cols; x++ {
			test.ExpectedFailure(t, scr.Pixel(y, x))
		}
	}
}
