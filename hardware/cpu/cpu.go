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

// Package cpu implements the register file of the machine: sixteen 8-bit
// general purpose registers, the 16-bit index register, the program counter
// and the return stack.
//
// The program counter and index register are full 16-bit values and are
// never implicitly masked to the 12 bits the memory package can address.
// Arithmetic on them (ADD I,Vx and the indexed jump) wraps at 16 bits; a
// value beyond the addressable range simply reads as zero at the memory
// package boundary.
package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherchip8/hardware/memory"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the VF register. VF is a general purpose register
// but several instructions overwrite it as a side effect, using it as a
// carry/borrow/collision flag.
const Flag = 0xF

// StackSize is the number of return addresses the stack can hold.
const StackSize = 16

// CPU is the register file of the machine.
type CPU struct {
	// general purpose registers, V0 to VF
	V [NumRegisters]uint8

	// the index register, used by the memory-indexed instructions
	I uint16

	// address of the next instruction to fetch
	PC uint16

	// stack depth. invariant: 0 <= SP <= StackSize. the top of the stack is
	// Stack[SP-1]
	SP    int
	Stack [StackSize]uint16
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	mc := &CPU{}
	mc.Reset()
	return mc
}

// Reset the CPU to its power-on state.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.SP = 0
	for i := range mc.Stack {
		mc.Stack[i] = 0
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Push a return address onto the stack. Returns false, changing nothing,
// if the stack is full. Note that the machine treats the stack as full at
// a depth one short of the array; the final slot is never used.
func (mc *CPU) Push(address uint16) bool {
	if mc.SP >= StackSize-1 {
		return false
	}
	mc.Stack[mc.SP] = address
	mc.SP++
	return true
}

// Pop a return address from the stack. Returns false, changing nothing, if
// the stack is empty.
func (mc *CPU) Pop() (uint16, bool) {
	if mc.SP <= 0 {
		return 0, false
	}
	mc.SP--
	return mc.Stack[mc.SP], true
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x SP=%d I=%#04x\n", mc.PC, mc.SP, mc.I))
	for i := range mc.V {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("V%X=%02x", i, mc.V[i]))
	}
	return s.String()
}
