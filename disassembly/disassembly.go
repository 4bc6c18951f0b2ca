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

// Package disassembly turns program bytes back into assembly text. The
// sweep is linear: every even offset from the program origin is decoded
// as an instruction, which means sprite data interleaved with code shows
// up as DATA entries (or as nonsense instructions, when the bytes happen
// to decode). The machine makes no distinction either, so neither do we.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherchip8/hardware/memory"
)

// Disassembly is the result of disassembling a program.
type Disassembly struct {
	Entries []execution.Result
}

// FromCartridge disassembles the program specified by the loader, without
// running it. Programs longer than the machine's program area are
// truncated the same way the machine truncates them.
func FromCartridge(cartload *cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	data := cartload.Data
	if len(data) > memory.ProgramSize {
		data = data[:memory.ProgramSize]
	}

	dsm := &Disassembly{
		Entries: make([]execution.Result, 0, (len(data)+1)/2),
	}

	for i := 0; i < len(data); i += 2 {
		word := uint16(data[i]) << 8
		if i+1 < len(data) {
			word |= uint16(data[i+1])
		}
		dsm.Entries = append(dsm.Entries, execution.Result{
			Address:     memory.ProgramOrigin + uint16(i),
			Instruction: instructions.Decode(word),
		})
	}

	return dsm, nil
}

// FromMemory disassembles the program area of a live machine. Useful in
// the debugger, where self-modifying programs can diverge from whatever
// was originally loaded.
func FromMemory(mem *memory.Memory) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]execution.Result, 0, memory.ProgramSize/2),
	}

	for a := memory.ProgramOrigin; a < memory.Size; a += 2 {
		addr := uint16(a)
		dsm.Entries = append(dsm.Entries, execution.Result{
			Address:     addr,
			Instruction: instructions.Decode(mem.ReadWord(addr)),
		})
	}

	return dsm
}

// Write the disassembly in full.
func (dsm *Disassembly) Write(output io.Writer) error {
	if len(dsm.Entries) == 0 {
		return nil
	}
	last := dsm.Entries[len(dsm.Entries)-1]
	return dsm.WriteRange(output, dsm.Entries[0].Address, last.Address)
}

// WriteRange writes the disassembly of the entries between two addresses,
// inclusive at both ends. Addresses outside the disassembled program are
// clamped rather than rejected.
//
// runs of EMPTY entries are collapsed. without this a full listing of the
// program area is mostly zero words.
func (dsm *Disassembly) WriteRange(output io.Writer, from uint16, to uint16) error {
	empty := 0
	for _, e := range dsm.Entries {
		if e.Address < from || e.Address > to {
			continue
		}

		if e.Instruction.Defn.Operator == instructions.Empty {
			empty++
			if empty == 2 {
				_, err := io.WriteString(output, "....\n")
				if err != nil {
					return curated.Errorf("disassembly: %v", err)
				}
			}
			if empty > 1 {
				continue
			}
		} else {
			empty = 0
		}

		_, err := io.WriteString(output, fmt.Sprintf("%s\n", e.String()))
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}

// WriteVerbose writes the disassembly in full with a plain english
// description of every instruction alongside.
func (dsm *Disassembly) WriteVerbose(output io.Writer) error {
	for _, e := range dsm.Entries {
		_, err := io.WriteString(output, fmt.Sprintf("%-30s %s\n", e.String(), e.Instruction.Verbose()))
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
