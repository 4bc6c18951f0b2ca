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

// Package emulation runs the machine on its own goroutine at a requested
// frequency and arbitrates access to it. The machine packages are all
// synchronous and know nothing about threading; everything concurrent
// happens here.
//
// One goroutine, started by NewEmulation, owns the execution cadence:
// while the emulation is started it runs one machine cycle per tick of
// the frequency limiter, taking the write lock for just the duration of
// the cycle. Everyone else reaches the machine through Do (write access)
// or View (read access, concurrent with other readers). A paused
// emulation parks the goroutine on a condition variable, costing nothing
// until it is started again.
package emulation

import (
	"sync"

	"github.com/jetsetilly/gopherchip8/hardware/chip8"
	"github.com/jetsetilly/gopherchip8/logger"
)

// DefaultFrequency is the machine cycle rate used until a caller asks for
// something different.
const DefaultFrequency = 600

// Emulation owns a machine and the goroutine that runs it.
type Emulation struct {
	c8 *chip8.Chip8

	// guards the machine itself
	crit sync.RWMutex

	// guards the running and ended flags. the scheduler parks on the
	// condition while paused
	runCrit sync.Mutex
	runCond *sync.Cond
	running bool
	ended   bool

	lmtr *Limiter

	// closed when the scheduler goroutine has returned
	done chan bool
}

// NewEmulation is the preferred method of initialisation for the
// Emulation type. The scheduler goroutine starts immediately but the
// emulation begins paused.
func NewEmulation(c8 *chip8.Chip8) *Emulation {
	emu := &Emulation{
		c8:   c8,
		lmtr: NewLimiter(DefaultFrequency),
		done: make(chan bool),
	}
	emu.runCond = sync.NewCond(&emu.runCrit)

	go emu.run()

	return emu
}

// the scheduler loop. one machine cycle per limiter tick while running;
// parked while paused; returns on End().
func (emu *Emulation) run() {
	defer close(emu.done)

	for {
		emu.runCrit.Lock()
		for !emu.running && !emu.ended {
			emu.runCond.Wait()
		}
		if emu.ended {
			emu.runCrit.Unlock()
			return
		}
		emu.runCrit.Unlock()

		emu.lmtr.Wait()

		emu.crit.Lock()
		err := emu.c8.Step()
		emu.crit.Unlock()

		if err != nil {
			logger.Logf("emulation", "%v", err)
		}
	}
}

// Start the emulation, or resume it after a pause.
func (emu *Emulation) Start() {
	emu.runCrit.Lock()
	emu.running = true
	emu.runCond.Broadcast()
	emu.runCrit.Unlock()
}

// Pause the emulation. A cycle already underway completes; no further
// cycles begin until Start is called.
func (emu *Emulation) Pause() {
	emu.runCrit.Lock()
	emu.running = false
	emu.runCrit.Unlock()
}

// Running returns true if the emulation is started.
func (emu *Emulation) Running() bool {
	emu.runCrit.Lock()
	defer emu.runCrit.Unlock()
	return emu.running
}

// End the emulation and wait for the scheduler goroutine to finish. The
// machine is left intact and can still be inspected directly; Do, View
// and the start/pause functions must not be used after End. Calling End
// more than once is harmless.
func (emu *Emulation) End() {
	emu.runCrit.Lock()
	if emu.ended {
		emu.runCrit.Unlock()
		return
	}
	emu.ended = true
	emu.runCond.Broadcast()
	emu.runCrit.Unlock()

	// the scheduler may be waiting on a limiter tick. the limiter is still
	// live at this point so the wait ends within a tick and the loop then
	// notices the ended flag
	<-emu.done

	emu.lmtr.Stop()
}

// Do gives f exclusive access to the machine. The scheduler cannot run a
// cycle while f is running; f must not block indefinitely.
func (emu *Emulation) Do(f func(*chip8.Chip8) error) error {
	emu.crit.Lock()
	defer emu.crit.Unlock()
	return f(emu.c8)
}

// View gives f read access to the machine, concurrently with any other
// readers. f must not mutate the machine.
func (emu *Emulation) View(f func(*chip8.Chip8) error) error {
	emu.crit.RLock()
	defer emu.crit.RUnlock()
	return f(emu.c8)
}

// SetFrequency changes the machine cycle rate.
func (emu *Emulation) SetFrequency(hz float32) {
	emu.lmtr.SetRate(hz)
}

// Frequency returns the requested machine cycle rate.
func (emu *Emulation) Frequency() float32 {
	return emu.lmtr.Rate()
}

// ActualFrequency returns the machine cycle rate actually being achieved.
func (emu *Emulation) ActualFrequency() float32 {
	return emu.lmtr.Actual()
}

// SetLimit turns frequency limiting off or back on. With limiting off the
// machine runs as fast as the host allows.
func (emu *Emulation) SetLimit(limit bool) {
	emu.lmtr.SetLimit(limit)
}
