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

package chip8_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip8/hardware/chip8"
	"github.com/jetsetilly/gopherchip8/hardware/cpu"
	"github.com/jetsetilly/gopherchip8/hardware/memory"
	"github.com/jetsetilly/gopherchip8/test"
)

// assemble a program from instruction words.
func program(words ...uint16) []uint8 {
	p := make([]uint8, 0, len(words)*2)
	for _, w := range words {
		p = append(p, uint8(w>>8), uint8(w&0xff))
	}
	return p
}

// reset the machine and load a program assembled from instruction words.
func load(c8 *chip8.Chip8, words ...uint16) {
	c8.Reset()
	c8.Mem.Load(program(words...))
}

// step the machine n times, failing the test on any error.
func step(t *testing.T, c8 *chip8.Chip8, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c8.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	c8 := chip8.NewChip8()
	load(c8, 0x6005, 0x6103, 0x8014, 0x1200)

	// LD V0,05; LD V1,03; ADD V0,V1
	step(t, c8, 3)
	test.Equate(t, c8.CPU.V[0], 8)
	test.Equate(t, c8.CPU.V[1], 3)
	test.Equate(t, c8.CPU.V[cpu.Flag], 0)

	// JP 200 returns the program counter to the top of the program
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, memory.ProgramOrigin)

	// and round again
	step(t, c8, 3)
	test.Equate(t, c8.CPU.V[0], 8)
}

func TestArithmeticFlags(t *testing.T) {
	c8 := chip8.NewChip8()

	// ADD V0,V1 with carry
	load(c8, 0x8014)
	c8.CPU.V[0] = 0xff
	c8.CPU.V[1] = 0x01
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0x00)
	test.Equate(t, c8.CPU.V[cpu.Flag], 1)

	// and without
	load(c8, 0x8014)
	c8.CPU.V[0] = 0x01
	c8.CPU.V[1] = 0x01
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0x02)
	test.Equate(t, c8.CPU.V[cpu.Flag], 0)
}

func TestSubtractionFlags(t *testing.T) {
	c8 := chip8.NewChip8()

	// SUB V0,V1. VF=1 when V0 is strictly greater
	load(c8, 0x8015)
	c8.CPU.V[0] = 5
	c8.CPU.V[1] = 3
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 2)
	test.Equate(t, c8.CPU.V[cpu.Flag], 1)

	// equal operands do not set the flag
	load(c8, 0x8015)
	c8.CPU.V[0] = 3
	c8.CPU.V[1] = 3
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0)
	test.Equate(t, c8.CPU.V[cpu.Flag], 0)

	// SUBN V0,V1 computes V1-V0
	load(c8, 0x8017)
	c8.CPU.V[0] = 5
	c8.CPU.V[1] = 3
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0xfe)
	test.Equate(t, c8.CPU.V[cpu.Flag], 0)
}

func TestShiftFlags(t *testing.T) {
	c8 := chip8.NewChip8()

	// SHR captures the outgoing low bit
	load(c8, 0x8016)
	c8.CPU.V[0] = 0x03
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0x01)
	test.Equate(t, c8.CPU.V[cpu.Flag], 1)

	// SHL captures the outgoing high bit
	load(c8, 0x801e)
	c8.CPU.V[0] = 0x80
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0x00)
	test.Equate(t, c8.CPU.V[cpu.Flag], 1)
}

func TestFlagRegisterAsResult(t *testing.T) {
	c8 := chip8.NewChip8()

	// ADD VF,V1: the sum lands in VF after the carry does, so the sum is
	// what survives
	load(c8, 0x8f14)
	c8.CPU.V[cpu.Flag] = 0xff
	c8.CPU.V[1] = 0x02
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[cpu.Flag], 0x01)
}

func TestSkips(t *testing.T) {
	c8 := chip8.NewChip8()

	// SE V0,42 skips when equal
	load(c8, 0x3042)
	c8.CPU.V[0] = 0x42
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x204)

	// and does not skip when unequal
	load(c8, 0x3042)
	c8.CPU.V[0] = 0x41
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x202)

	// SNE V0,42 is the reverse
	load(c8, 0x4042)
	c8.CPU.V[0] = 0x41
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x204)

	// SE V0,V1
	load(c8, 0x5010)
	c8.CPU.V[0] = 7
	c8.CPU.V[1] = 7
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x204)

	// SNE V0,V1
	load(c8, 0x9010)
	c8.CPU.V[0] = 7
	c8.CPU.V[1] = 7
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x202)
}

func TestKeySkips(t *testing.T) {
	c8 := chip8.NewChip8()

	// SKP V0 skips only while the key numbered by V0 is pressed
	load(c8, 0xe09e)
	c8.CPU.V[0] = 5
	c8.Keypad.Press(5)
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x204)

	load(c8, 0xe09e)
	c8.CPU.V[0] = 5
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x202)

	// SKNP V0 is the reverse
	load(c8, 0xe0a1)
	c8.CPU.V[0] = 5
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x204)
}

func TestCallRet(t *testing.T) {
	c8 := chip8.NewChip8()

	// CALL 300 with a RET waiting at the subroutine
	load(c8, 0x2300)
	c8.Mem.Write(0x300, 0x00)
	c8.Mem.Write(0x301, 0xee)

	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x300)
	test.Equate(t, c8.CPU.SP, 1)
	test.Equate(t, c8.CPU.Stack[0], 0x200)

	// RET resumes after the call
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x202)
	test.Equate(t, c8.CPU.SP, 0)
}

func TestRetUnderflow(t *testing.T) {
	c8 := chip8.NewChip8()

	// RET with an empty stack is reported and skipped over
	load(c8, 0x00ee)
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x202)
	test.Equate(t, c8.CPU.SP, 0)
}

func TestCallOverflow(t *testing.T) {
	c8 := chip8.NewChip8()

	// CALL 200: an instruction that endlessly calls itself. the stack
	// fills one short of the array and later calls are skipped over
	load(c8, 0x2200)
	step(t, c8, cpu.StackSize-1)
	test.Equate(t, c8.CPU.SP, cpu.StackSize-1)
	test.Equate(t, c8.CPU.PC, 0x200)

	step(t, c8, 1)
	test.Equate(t, c8.CPU.SP, cpu.StackSize-1)
	test.Equate(t, c8.CPU.PC, 0x202)
}

func TestKeyWait(t *testing.T) {
	c8 := chip8.NewChip8()
	load(c8, 0xf30a)

	// with no key pressed the program counter does not move
	step(t, c8, 3)
	test.Equate(t, c8.CPU.PC, 0x200)

	// the wait completes on the cycle that finds a key down
	c8.Keypad.Press(0x0b)
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[3], 0x0b)
	test.Equate(t, c8.CPU.PC, 0x202)
}

func TestIndexedJump(t *testing.T) {
	c8 := chip8.NewChip8()

	// JP V0,300 lands at 300+V0 and stays there
	load(c8, 0xb300)
	c8.CPU.V[0] = 4
	step(t, c8, 1)
	test.Equate(t, c8.CPU.PC, 0x304)
}

func TestIndexArithmetic(t *testing.T) {
	c8 := chip8.NewChip8()

	// LD I,2f0
	load(c8, 0xa2f0)
	step(t, c8, 1)
	test.Equate(t, c8.CPU.I, 0x2f0)

	// ADD I,V0 wraps at 16 bits
	load(c8, 0xf01e)
	c8.CPU.I = 0xffff
	c8.CPU.V[0] = 2
	step(t, c8, 1)
	test.Equate(t, c8.CPU.I, 0x0001)

	// LD F,V0 points the index at a font glyph
	load(c8, 0xf029)
	c8.CPU.V[0] = 3
	step(t, c8, 1)
	test.Equate(t, c8.CPU.I, 3*memory.GlyphSize)
}

func TestBcd(t *testing.T) {
	c8 := chip8.NewChip8()
	load(c8, 0xf033)
	c8.CPU.V[0] = 234
	c8.CPU.I = 0x300
	step(t, c8, 1)
	test.Equate(t, c8.Mem.Read(0x300), 2)
	test.Equate(t, c8.Mem.Read(0x301), 3)
	test.Equate(t, c8.Mem.Read(0x302), 4)
}

func TestSaveRestore(t *testing.T) {
	c8 := chip8.NewChip8()

	// LD [I],V2 stores V0 to V2 inclusive
	load(c8, 0xf255)
	c8.CPU.V[0] = 0x11
	c8.CPU.V[1] = 0x22
	c8.CPU.V[2] = 0x33
	c8.CPU.V[3] = 0x44
	c8.CPU.I = 0x300
	step(t, c8, 1)
	test.Equate(t, c8.Mem.Read(0x300), 0x11)
	test.Equate(t, c8.Mem.Read(0x301), 0x22)
	test.Equate(t, c8.Mem.Read(0x302), 0x33)
	test.Equate(t, c8.Mem.Read(0x303), 0x00)

	// LD V2,[I] reads them back
	load(c8, 0xf265)
	c8.CPU.I = 0x300
	c8.Mem.Write(0x300, 0xaa)
	c8.Mem.Write(0x301, 0xbb)
	c8.Mem.Write(0x302, 0xcc)
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0xaa)
	test.Equate(t, c8.CPU.V[1], 0xbb)
	test.Equate(t, c8.CPU.V[2], 0xcc)
	test.Equate(t, c8.CPU.V[3], 0x00)
}

func TestDraw(t *testing.T) {
	c8 := chip8.NewChip8()

	// draw the font glyph for zero at (0,0) twice. the glyph is four
	// pixels wide and five rows tall with a hollow middle
	load(c8, 0xd015, 0xd015)

	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[cpu.Flag], 0)
	test.ExpectedSuccess(t, c8.Screen.Pixel(0, 0))
	test.ExpectedSuccess(t, c8.Screen.Pixel(0, 3))
	test.ExpectedFailure(t, c8.Screen.Pixel(0, 4))
	test.ExpectedFailure(t, c8.Screen.Pixel(1, 1))

	// the second draw erases the glyph and reports the collision
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[cpu.Flag], 1)
	test.ExpectedFailure(t, c8.Screen.Pixel(0, 0))
	test.ExpectedFailure(t, c8.Screen.Pixel(4, 0))
}

func TestRandomMask(t *testing.T) {
	c8 := chip8.NewChip8()

	// RND V0,00: whatever the random byte, the mask forces zero
	load(c8, 0xc000)
	c8.CPU.V[0] = 0xff
	step(t, c8, 1)
	test.Equate(t, c8.CPU.V[0], 0x00)
}

func TestTimerInstructions(t *testing.T) {
	c8 := chip8.NewChip8()

	// LD DT,V0; LD ST,V1; LD V2,DT
	load(c8, 0xf015, 0xf118, 0xf207)
	c8.CPU.V[0] = 0x30
	c8.CPU.V[1] = 0x10
	step(t, c8, 3)
	test.Equate(t, c8.Timers.Sound, 0x10)

	// the delay timer may have decayed by at most one tick in the
	// moment the three instructions took
	if c8.CPU.V[2] != 0x30 && c8.CPU.V[2] != 0x2f {
		t.Errorf("delay timer read back as %#02x", c8.CPU.V[2])
	}
}
