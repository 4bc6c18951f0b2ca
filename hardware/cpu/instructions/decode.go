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

package instructions

import "fmt"

// Instruction is a decoded instruction word. All operand fields are
// extracted regardless of which of them the instruction actually uses.
type Instruction struct {
	Defn Definition
	Word uint16

	// register index in bits 8 to 11
	X uint8

	// register index in bits 4 to 7
	Y uint8

	// the low nibble
	Nibble uint8

	// the low byte
	Byte uint8

	// the low 12 bits
	Addr uint16
}

// Decode a 16-bit word into an Instruction. Decoding cannot fail; a word
// that matches nothing in the instruction set decodes to Data.
func Decode(word uint16) Instruction {
	defn := dataDefinition
	for _, d := range Set {
		if word&d.Mask == d.Pattern {
			defn = d
			break
		}
	}

	return Instruction{
		Defn:   defn,
		Word:   word,
		X:      uint8((word >> 8) & 0x0f),
		Y:      uint8((word >> 4) & 0x0f),
		Nibble: uint8(word & 0x0f),
		Byte:   uint8(word & 0xff),
		Addr:   word & 0x0fff,
	}
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %04x/%04x", defn.Mnemonic, defn.Pattern, defn.Mask)
}

// String returns the instruction in the conventional assembly format.
func (ins Instruction) String() string {
	switch ins.Defn.Operator {
	case Sys:
		return fmt.Sprintf("SYS %03X", ins.Addr)
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jp:
		return fmt.Sprintf("JP %03X", ins.Addr)
	case Call:
		return fmt.Sprintf("CALL %03X", ins.Addr)
	case SeByte:
		return fmt.Sprintf("SE V%X, %02X", ins.X, ins.Byte)
	case SneByte:
		return fmt.Sprintf("SNE V%X, %02X", ins.X, ins.Byte)
	case SeRegister:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case LdByte:
		return fmt.Sprintf("LD V%X, %02X", ins.X, ins.Byte)
	case AddByte:
		return fmt.Sprintf("ADD V%X, %02X", ins.X, ins.Byte)
	case LdRegister:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case AddRegister:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case Sub:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case Shr:
		return fmt.Sprintf("SHR V%X", ins.X)
	case Subn:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case Shl:
		return fmt.Sprintf("SHL V%X", ins.X)
	case SneRegister:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case LdIndex:
		return fmt.Sprintf("LD I, %03X", ins.Addr)
	case JpRelative:
		return fmt.Sprintf("JP V0, %03X", ins.Addr)
	case Rnd:
		return fmt.Sprintf("RND V%X, %02X", ins.X, ins.Byte)
	case Drw:
		return fmt.Sprintf("DRW V%X, V%X, %X", ins.X, ins.Y, ins.Nibble)
	case Skp:
		return fmt.Sprintf("SKP V%X", ins.X)
	case Sknp:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case LdFromDelay:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case LdFromKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case LdToDelay:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case LdToSound:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LdSprite:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case LdBcd:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case Save:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case Restore:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	case Empty:
		return "EMPTY"
	}
	return fmt.Sprintf("DATA %04X", ins.Word)
}

// Verbose returns a plain english description of the instruction, suitable
// for the disassembler's long form output.
func (ins Instruction) Verbose() string {
	switch ins.Defn.Operator {
	case Sys:
		return fmt.Sprintf("system call at %03X (ignored)", ins.Addr)
	case Cls:
		return "clear the screen"
	case Ret:
		return "return from subroutine"
	case Jp:
		return fmt.Sprintf("jump to %03X", ins.Addr)
	case Call:
		return fmt.Sprintf("call subroutine at %03X", ins.Addr)
	case SeByte:
		return fmt.Sprintf("skip next instruction if V%X = %02X", ins.X, ins.Byte)
	case SneByte:
		return fmt.Sprintf("skip next instruction if V%X != %02X", ins.X, ins.Byte)
	case SeRegister:
		return fmt.Sprintf("skip next instruction if V%X = V%X", ins.X, ins.Y)
	case LdByte:
		return fmt.Sprintf("set V%X = %02X", ins.X, ins.Byte)
	case AddByte:
		return fmt.Sprintf("set V%X = V%X + %02X", ins.X, ins.X, ins.Byte)
	case LdRegister:
		return fmt.Sprintf("set V%X = V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("set V%X = V%X OR V%X", ins.X, ins.X, ins.Y)
	case And:
		return fmt.Sprintf("set V%X = V%X AND V%X", ins.X, ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("set V%X = V%X XOR V%X", ins.X, ins.X, ins.Y)
	case AddRegister:
		return fmt.Sprintf("set V%X = V%X + V%X, VF = carry", ins.X, ins.X, ins.Y)
	case Sub:
		return fmt.Sprintf("set V%X = V%X - V%X, VF = NOT borrow", ins.X, ins.X, ins.Y)
	case Shr:
		return fmt.Sprintf("set V%X = V%X SHR 1, VF = old low bit", ins.X, ins.X)
	case Subn:
		return fmt.Sprintf("set V%X = V%X - V%X, VF = NOT borrow", ins.X, ins.Y, ins.X)
	case Shl:
		return fmt.Sprintf("set V%X = V%X SHL 1, VF = old high bit", ins.X, ins.X)
	case SneRegister:
		return fmt.Sprintf("skip next instruction if V%X != V%X", ins.X, ins.Y)
	case LdIndex:
		return fmt.Sprintf("set I = %03X", ins.Addr)
	case JpRelative:
		return fmt.Sprintf("jump to %03X + V0", ins.Addr)
	case Rnd:
		return fmt.Sprintf("set V%X = random byte AND %02X", ins.X, ins.Byte)
	case Drw:
		return fmt.Sprintf("draw %X byte sprite from I at (V%X, V%X), VF = collision", ins.Nibble, ins.X, ins.Y)
	case Skp:
		return fmt.Sprintf("skip next instruction if key V%X is pressed", ins.X)
	case Sknp:
		return fmt.Sprintf("skip next instruction if key V%X is not pressed", ins.X)
	case LdFromDelay:
		return fmt.Sprintf("set V%X = delay timer", ins.X)
	case LdFromKey:
		return fmt.Sprintf("wait for a key press, store the key in V%X", ins.X)
	case LdToDelay:
		return fmt.Sprintf("set delay timer = V%X", ins.X)
	case LdToSound:
		return fmt.Sprintf("set sound timer = V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("set I = I + V%X", ins.X)
	case LdSprite:
		return fmt.Sprintf("set I = address of sprite for digit V%X", ins.X)
	case LdBcd:
		return fmt.Sprintf("store BCD of V%X at I, I+1 and I+2", ins.X)
	case Save:
		return fmt.Sprintf("store V0 to V%X in memory starting at I", ins.X)
	case Restore:
		return fmt.Sprintf("read V0 to V%X from memory starting at I", ins.X)
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("data (%04X)", ins.Word)
}
