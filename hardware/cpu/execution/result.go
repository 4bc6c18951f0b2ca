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

// Package execution tracks the result of instruction execution. The
// debugger and the disassembler both want an address paired with the
// instruction found there; this is that pairing.
package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherchip8/hardware/cpu/instructions"
)

// Result records an instruction and the address it was fetched from.
type Result struct {
	Address     uint16
	Instruction instructions.Instruction
}

func (res Result) String() string {
	return fmt.Sprintf("%04x  %04x  %s", res.Address, res.Instruction.Word, res.Instruction.String())
}
