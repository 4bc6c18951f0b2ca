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

package chip8

import (
	"time"

	"github.com/jetsetilly/gopherchip8/hardware/cpu"
	"github.com/jetsetilly/gopherchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherchip8/hardware/memory"
	"github.com/jetsetilly/gopherchip8/logger"
)

// Step runs one fetch-decode-execute cycle and then gives the timers the
// chance to decay. The program counter advances past the instruction
// unless the instruction has set it explicitly; a key wait that found no
// key leaves it alone entirely, so the wait runs again next cycle.
func (c8 *Chip8) Step() error {
	c8.LastResult.Address = c8.CPU.PC
	c8.LastResult.Instruction = instructions.Decode(c8.Mem.ReadWord(c8.CPU.PC))

	if c8.execute(c8.LastResult.Instruction) {
		c8.CPU.PC += 2
	}

	c8.Timers.Update(time.Now())

	return nil
}

// execute applies one instruction to the machine. The return value
// indicates whether the program counter should advance as normal.
func (c8 *Chip8) execute(ins instructions.Instruction) bool {
	switch ins.Defn.Operator {
	case instructions.Cls:
		c8.Screen.Clear()

	case instructions.Ret:
		addr, ok := c8.CPU.Pop()
		if !ok {
			logger.Logf("cpu", "stack underflow: RET at %03x ignored", c8.CPU.PC)
			break
		}
		c8.CPU.PC = addr

	case instructions.Jp:
		c8.CPU.PC = ins.Addr
		return false

	case instructions.Call:
		if !c8.CPU.Push(c8.CPU.PC) {
			logger.Logf("cpu", "stack overflow: CALL at %03x ignored", c8.CPU.PC)
			break
		}
		c8.CPU.PC = ins.Addr
		return false

	case instructions.SeByte:
		if c8.CPU.V[ins.X] == ins.Byte {
			c8.CPU.PC += 2
		}

	case instructions.SneByte:
		if c8.CPU.V[ins.X] != ins.Byte {
			c8.CPU.PC += 2
		}

	case instructions.SeRegister:
		if c8.CPU.V[ins.X] == c8.CPU.V[ins.Y] {
			c8.CPU.PC += 2
		}

	case instructions.LdByte:
		c8.CPU.V[ins.X] = ins.Byte

	case instructions.AddByte:
		c8.CPU.V[ins.X] += ins.Byte

	case instructions.LdRegister:
		c8.CPU.V[ins.X] = c8.CPU.V[ins.Y]

	case instructions.Or:
		c8.CPU.V[ins.X] |= c8.CPU.V[ins.Y]

	case instructions.And:
		c8.CPU.V[ins.X] &= c8.CPU.V[ins.Y]

	case instructions.Xor:
		c8.CPU.V[ins.X] ^= c8.CPU.V[ins.Y]

	case instructions.AddRegister:
		// the flag is written before the result so that a result register
		// of VF keeps the result
		sum := uint16(c8.CPU.V[ins.X]) + uint16(c8.CPU.V[ins.Y])
		if sum > 0xff {
			c8.CPU.V[cpu.Flag] = 1
		} else {
			c8.CPU.V[cpu.Flag] = 0
		}
		c8.CPU.V[ins.X] = uint8(sum)

	case instructions.Sub:
		r1 := c8.CPU.V[ins.X]
		r2 := c8.CPU.V[ins.Y]
		if r1 > r2 {
			c8.CPU.V[cpu.Flag] = 1
		} else {
			c8.CPU.V[cpu.Flag] = 0
		}
		c8.CPU.V[ins.X] = r1 - r2

	case instructions.Shr:
		r := c8.CPU.V[ins.X]
		c8.CPU.V[cpu.Flag] = r & 0x01
		c8.CPU.V[ins.X] = r >> 1

	case instructions.Subn:
		r1 := c8.CPU.V[ins.X]
		r2 := c8.CPU.V[ins.Y]
		if r2 > r1 {
			c8.CPU.V[cpu.Flag] = 1
		} else {
			c8.CPU.V[cpu.Flag] = 0
		}
		c8.CPU.V[ins.X] = r2 - r1

	case instructions.Shl:
		r := c8.CPU.V[ins.X]
		c8.CPU.V[cpu.Flag] = (r & 0x80) >> 7
		c8.CPU.V[ins.X] = r << 1

	case instructions.SneRegister:
		if c8.CPU.V[ins.X] != c8.CPU.V[ins.Y] {
			c8.CPU.PC += 2
		}

	case instructions.LdIndex:
		c8.CPU.I = ins.Addr

	case instructions.JpRelative:
		c8.CPU.PC = ins.Addr + uint16(c8.CPU.V[0])
		return false

	case instructions.Rnd:
		c8.CPU.V[ins.X] = uint8(c8.Rand.Intn(256)) & ins.Byte

	case instructions.Drw:
		sprite := make([]uint8, ins.Nibble)
		for i := range sprite {
			sprite[i] = c8.Mem.Read(c8.CPU.I + uint16(i))
		}
		vf, ok := c8.Screen.DrawSprite(c8.CPU.V[ins.X], c8.CPU.V[ins.Y], sprite)
		if ok {
			c8.CPU.V[cpu.Flag] = vf
		}

	case instructions.Skp:
		if c8.Keypad.IsPressed(c8.CPU.V[ins.X]) {
			c8.CPU.PC += 2
		}

	case instructions.Sknp:
		if !c8.Keypad.IsPressed(c8.CPU.V[ins.X]) {
			c8.CPU.PC += 2
		}

	case instructions.LdFromDelay:
		c8.CPU.V[ins.X] = c8.Timers.Delay

	case instructions.LdFromKey:
		k, ok := c8.Keypad.Poll()
		if !ok {
			return false
		}
		c8.CPU.V[ins.X] = k

	case instructions.LdToDelay:
		c8.Timers.Delay = c8.CPU.V[ins.X]

	case instructions.LdToSound:
		c8.Timers.Sound = c8.CPU.V[ins.X]

	case instructions.AddIndex:
		c8.CPU.I += uint16(c8.CPU.V[ins.X])

	case instructions.LdSprite:
		c8.CPU.I = uint16(c8.CPU.V[ins.X]) * memory.GlyphSize

	case instructions.LdBcd:
		v := c8.CPU.V[ins.X]
		c8.Mem.Write(c8.CPU.I, v/100)
		c8.Mem.Write(c8.CPU.I+1, (v/10)%10)
		c8.Mem.Write(c8.CPU.I+2, v%10)

	case instructions.Save:
		for i := 0; i <= int(ins.X); i++ {
			c8.Mem.Write(c8.CPU.I+uint16(i), c8.CPU.V[i])
		}

	case instructions.Restore:
		for i := 0; i <= int(ins.X); i++ {
			c8.CPU.V[i] = c8.Mem.Read(c8.CPU.I + uint16(i))
		}

	case instructions.Sys, instructions.Empty, instructions.Data:
		// no-op
	}

	return true
}
