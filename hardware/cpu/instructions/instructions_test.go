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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherchip8/test"
)

func TestDecode(t *testing.T) {
	ins := instructions.Decode(0x00e0)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Cls))

	ins = instructions.Decode(0x00ee)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Ret))

	ins = instructions.Decode(0x1234)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Jp))
	test.Equate(t, ins.Addr, 0x234)

	ins = instructions.Decode(0x6a07)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.LdByte))
	test.Equate(t, ins.X, 10)
	test.Equate(t, ins.Byte, 0x07)

	ins = instructions.Decode(0x8014)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.AddRegister))
	test.Equate(t, ins.X, 0)
	test.Equate(t, ins.Y, 1)

	ins = instructions.Decode(0xffff)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Data))
	test.Equate(t, ins.Word, 0xffff)
}

func TestDecodeOrdering(t *testing.T) {
	// the all-zero word is Empty, not a system call
	ins := instructions.Decode(0x0000)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Empty))

	// 0x00e0 and 0x00ee would match the system call entry were the more
	// specific masks not tried first
	test.Equate(t, int(instructions.Decode(0x00e0).Defn.Operator), int(instructions.Cls))
	test.Equate(t, int(instructions.Decode(0x00ee).Defn.Operator), int(instructions.Ret))

	// the 8xyN group requires an exact low nibble. 0x800e is SHL but 0x800f
	// matches nothing
	test.Equate(t, int(instructions.Decode(0x800e).Defn.Operator), int(instructions.Shl))
	test.Equate(t, int(instructions.Decode(0x800f).Defn.Operator), int(instructions.Data))

	// likewise 5xy0. a non-zero low nibble is not a register skip
	test.Equate(t, int(instructions.Decode(0x5120).Defn.Operator), int(instructions.SeRegister))
	test.Equate(t, int(instructions.Decode(0x5125).Defn.Operator), int(instructions.Data))
}

func TestDecodeSystemCall(t *testing.T) {
	// the system call entry in the set tests the low 12 bits. a word in the
	// 0nnn form therefore decodes as Data while 0xe000 and 0xf000, matched
	// by nothing else, decode as Sys
	test.Equate(t, int(instructions.Decode(0x0123).Defn.Operator), int(instructions.Data))
	test.Equate(t, int(instructions.Decode(0xe000).Defn.Operator), int(instructions.Sys))
	test.Equate(t, int(instructions.Decode(0xf000).Defn.Operator), int(instructions.Sys))
}

func TestOperands(t *testing.T) {
	ins := instructions.Decode(0xd125)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Drw))
	test.Equate(t, ins.X, 1)
	test.Equate(t, ins.Y, 2)
	test.Equate(t, ins.Nibble, 5)

	ins = instructions.Decode(0xa2f0)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.LdIndex))
	test.Equate(t, ins.Addr, 0x2f0)

	ins = instructions.Decode(0xc533)
	test.Equate(t, int(ins.Defn.Operator), int(instructions.Rnd))
	test.Equate(t, ins.X, 5)
	test.Equate(t, ins.Byte, 0x33)
}

func TestDisassemblyStrings(t *testing.T) {
	test.Equate(t, instructions.Decode(0x00e0).String(), "CLS")
	test.Equate(t, instructions.Decode(0x1234).String(), "JP 234")
	test.Equate(t, instructions.Decode(0x6a07).String(), "LD VA, 07")
	test.Equate(t, instructions.Decode(0x8014).String(), "ADD V0, V1")
	test.Equate(t, instructions.Decode(0xd125).String(), "DRW V1, V2, 5")
	test.Equate(t, instructions.Decode(0xf655).String(), "LD [I], V6")
	test.Equate(t, instructions.Decode(0xffff).String(), "DATA FFFF")
}
