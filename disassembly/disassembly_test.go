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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/disassembly"
	"github.com/jetsetilly/gopherchip8/hardware/memory"
	"github.com/jetsetilly/gopherchip8/test"
)

func TestFromCartridge(t *testing.T) {
	cartload := cartridgeloader.Loader{
		Filename: "test.ch8",
		Data:     []uint8{0x6a, 0x07, 0xd1, 0x25, 0x12, 0x00},
	}

	dsm, err := disassembly.FromCartridge(&cartload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, len(dsm.Entries), 3)

	tw := &test.Writer{}
	err = dsm.Write(tw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.ExpectedSuccess(t, tw.Compare(
		"0200  6a07  LD VA, 07\n"+
			"0202  d125  DRW V1, V2, 5\n"+
			"0204  1200  JP 200\n"))
}

func TestFromCartridgeOddLength(t *testing.T) {
	cartload := cartridgeloader.Loader{
		Filename: "test.ch8",
		Data:     []uint8{0x00, 0xe0, 0x12},
	}

	dsm, err := disassembly.FromCartridge(&cartload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the trailing byte pairs with a zero to form a word
	test.Equate(t, len(dsm.Entries), 2)
	test.Equate(t, dsm.Entries[1].Instruction.Word, 0x1200)
}

func TestWriteRange(t *testing.T) {
	cartload := cartridgeloader.Loader{
		Filename: "test.ch8",
		Data:     []uint8{0x6a, 0x07, 0xd1, 0x25, 0x12, 0x00},
	}

	dsm, err := disassembly.FromCartridge(&cartload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tw := &test.Writer{}
	err = dsm.WriteRange(tw, 0x202, 0x202)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.ExpectedSuccess(t, tw.Compare("0202  d125  DRW V1, V2, 5\n"))
}

func TestWriteEmptyCollapse(t *testing.T) {
	cartload := cartridgeloader.Loader{
		Filename: "test.ch8",
		Data: []uint8{
			0x60, 0x01,
			0x00, 0x00,
			0x00, 0x00,
			0x00, 0x00,
			0x12, 0x00,
		},
	}

	dsm, err := disassembly.FromCartridge(&cartload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tw := &test.Writer{}
	err = dsm.Write(tw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.ExpectedSuccess(t, tw.Compare(
		"0200  6001  LD V0, 01\n"+
			"0202  0000  EMPTY\n"+
			"....\n"+
			"0208  1200  JP 200\n"))
}

func TestFromMemory(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load([]uint8{0x00, 0xe0})

	dsm := disassembly.FromMemory(mem)
	test.Equate(t, len(dsm.Entries), memory.ProgramSize/2)
	test.Equate(t, dsm.Entries[0].String(), "0200  00e0  CLS")

	// the rest of the program area disassembles as EMPTY
	test.Equate(t, dsm.Entries[1].String(), "0202  0000  EMPTY")
}
