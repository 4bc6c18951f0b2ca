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

package main_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/hardware/chip8"
)

func BenchmarkMachine(b *testing.B) {
	// a counting loop. V0 wraps around but the program never ends
	cartload := cartridgeloader.Loader{
		Filename: "bench.ch8",
		Data: []byte{
			0x60, 0x01, // 0200 LD V0, 01
			0x70, 0x01, // 0202 ADD V0, 01
			0x12, 0x02, // 0204 JP 202
		},
	}

	c8 := chip8.NewChip8()
	err := c8.AttachCartridge(&cartload)
	if err != nil {
		b.Fatalf(err.Error())
	}

	for n := 0; n < b.N; n++ {
		err = c8.Step()
		if err != nil {
			b.Fatalf(err.Error())
		}
	}
}
