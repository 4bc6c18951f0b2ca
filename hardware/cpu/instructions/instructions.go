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

// Package instructions defines the instruction set of the machine. Every
// 16-bit word decodes to exactly one instruction; words that match nothing
// in the set decode to Data, a no-op that exists only so the disassembler
// has something to show.
package instructions

// Operator identifies an instruction in the instruction set.
type Operator int

// List of operators in the instruction set.
const (
	Sys Operator = iota
	Cls
	Ret
	Jp
	Call
	SeByte
	SneByte
	SeRegister
	LdByte
	AddByte
	LdRegister
	Or
	And
	Xor
	AddRegister
	Sub
	Shr
	Subn
	Shl
	SneRegister
	LdIndex
	JpRelative
	Rnd
	Drw
	Skp
	Sknp
	LdFromDelay
	LdFromKey
	LdToDelay
	LdToSound
	AddIndex
	LdSprite
	LdBcd
	Save
	Restore
	Empty
	Data
)

// EffectCategory categorises an instruction by the effect it has on the
// program counter.
type EffectCategory int

// List of effect categories.
const (
	// the program counter advances to the next instruction as normal
	Normal EffectCategory = iota

	// the program counter is replaced outright (the jump instructions)
	Flow

	// the stack is involved (Call and Ret)
	Subroutine

	// the instruction following this one may be skipped
	Skip

	// the program counter does not advance until a condition is met
	// (LdFromKey)
	Wait
)

// Definition defines one entry in the instruction set. A word matches the
// definition when word&Mask == Pattern.
type Definition struct {
	Operator Operator
	Mnemonic string
	Pattern  uint16
	Mask     uint16
	Effect   EffectCategory
}

// Set is the list of instruction definitions in matching order: decoding
// returns the first definition the word matches. Masks are ordered most
// specific first so that, for example, 0x00e0 decodes as Cls and not as a
// system call.
//
// Note that the system call entry tests the low 12 bits rather than the
// high 4. In practice it catches the words 0xe000 and 0xf000 (the all-zero
// word having already matched Empty) and a word with a genuine 0nnn form
// falls through to Data. The machine has always decoded this way and ROMs
// do not care; system calls are ignored whichever way they decode.
var Set = []Definition{
	{Empty, "EMPTY", 0x0000, 0xffff, Normal},
	{Cls, "CLS", 0x00e0, 0xffff, Normal},
	{Ret, "RET", 0x00ee, 0xffff, Subroutine},
	{SeRegister, "SE", 0x5000, 0xf00f, Skip},
	{LdRegister, "LD", 0x8000, 0xf00f, Normal},
	{Or, "OR", 0x8001, 0xf00f, Normal},
	{And, "AND", 0x8002, 0xf00f, Normal},
	{Xor, "XOR", 0x8003, 0xf00f, Normal},
	{AddRegister, "ADD", 0x8004, 0xf00f, Normal},
	{Sub, "SUB", 0x8005, 0xf00f, Normal},
	{Shr, "SHR", 0x8006, 0xf00f, Normal},
	{Subn, "SUBN", 0x8007, 0xf00f, Normal},
	{Shl, "SHL", 0x800e, 0xf00f, Normal},
	{SneRegister, "SNE", 0x9000, 0xf00f, Skip},
	{Skp, "SKP", 0xe09e, 0xf0ff, Skip},
	{Sknp, "SKNP", 0xe0a1, 0xf0ff, Skip},
	{LdFromDelay, "LD", 0xf007, 0xf0ff, Normal},
	{LdFromKey, "LD", 0xf00a, 0xf0ff, Wait},
	{LdToDelay, "LD", 0xf015, 0xf0ff, Normal},
	{LdToSound, "LD", 0xf018, 0xf0ff, Normal},
	{AddIndex, "ADD", 0xf01e, 0xf0ff, Normal},
	{LdSprite, "LD", 0xf029, 0xf0ff, Normal},
	{LdBcd, "LD", 0xf033, 0xf0ff, Normal},
	{Save, "LD", 0xf055, 0xf0ff, Normal},
	{Restore, "LD", 0xf065, 0xf0ff, Normal},
	{Jp, "JP", 0x1000, 0xf000, Flow},
	{Call, "CALL", 0x2000, 0xf000, Subroutine},
	{SeByte, "SE", 0x3000, 0xf000, Skip},
	{SneByte, "SNE", 0x4000, 0xf000, Skip},
	{LdByte, "LD", 0x6000, 0xf000, Normal},
	{AddByte, "ADD", 0x7000, 0xf000, Normal},
	{LdIndex, "LD", 0xa000, 0xf000, Normal},
	{JpRelative, "JP", 0xb000, 0xf000, Flow},
	{Rnd, "RND", 0xc000, 0xf000, Normal},
	{Drw, "DRW", 0xd000, 0xf000, Normal},
	{Sys, "SYS", 0x0000, 0x0fff, Normal},
}

// dataDefinition is returned for any word that matches nothing in the Set.
var dataDefinition = Definition{Data, "DATA", 0x0000, 0x0000, Normal}
