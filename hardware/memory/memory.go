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

// Package memory implements the addressable memory of the machine: 4096
// bytes, of which the first 512 are reserved for the system. The built-in
// font occupies the bottom of the reserved area. Program code is loaded at
// the program origin and runs to the top of memory.
//
// All access is bounds-tolerant. Reading from outside the addressable range
// returns zero and writing to outside the range changes nothing. The machine
// this package serves favours continued execution over halting, so neither
// is an error.
package memory

import (
	"github.com/jetsetilly/gopherchip8/logger"
)

// Size is the number of addressable bytes.
const Size = 4096

// ProgramOrigin is the address at which program code is loaded and at which
// execution begins. Memory below this address is reserved.
const ProgramOrigin = 0x200

// ProgramSize is the maximum number of program bytes that can be loaded.
const ProgramSize = Size - ProgramOrigin

// Memory is the addressable memory of the machine.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset the contents of memory, zeroing everything and reinstating the font
// in the reserved area.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[:], font[:])
}

// Load program data into the program area. All mutable memory is reset
// first. Data longer than the program area is silently truncated; shorter
// data leaves the remainder of the program area zeroed.
func (mem *Memory) Load(data []uint8) {
	mem.Reset()

	if len(data) > ProgramSize {
		data = data[:ProgramSize]
		logger.Logf("memory", "program truncated to %d bytes", ProgramSize)
	}
	copy(mem.ram[ProgramOrigin:], data)
}

// Read returns the byte at the specified address. Addresses outside the
// addressable range read as zero.
func (mem *Memory) Read(address uint16) uint8 {
	if int(address) >= Size {
		return 0
	}
	return mem.ram[address]
}

// Write the byte at the specified address. Writes outside the addressable
// range change nothing.
func (mem *Memory) Write(address uint16, data uint8) {
	if int(address) >= Size {
		return
	}
	mem.ram[address] = data
}

// ReadWord returns the 16-bit instruction word at the specified address,
// high byte first. If either byte of the word falls outside the addressable
// range the word reads as zero.
func (mem *Memory) ReadWord(address uint16) uint16 {
	if int(address)+1 >= Size {
		return 0
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1])
}

// Snapshot returns a copy of the entire addressable range.
func (mem *Memory) Snapshot() []uint8 {
	s := make([]uint8, Size)
	copy(s, mem.ram[:])
	return s
}
