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

// Package timers implements the delay and sound timers of the machine.
// Both decay towards zero at 60Hz of wall-clock time, however quickly or
// slowly the machine itself is being run. The sound timer is tracked but
// no tone is generated; whether anything is listening to it is not the
// machine's concern.
package timers

import "time"

// DecayInterval is the wall-clock period of one timer tick.
const DecayInterval = 16666 * time.Microsecond

// Timers are the delay and sound timers of the machine. The fields are
// written directly by the timer instructions.
type Timers struct {
	Delay uint8
	Sound uint8

	// wall-clock time of the most recent decay
	lastDecay time.Time
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	tmr := &Timers{}
	tmr.Reset(time.Now())
	return tmr
}

// Reset both timers to zero and restart the decay reference from now.
func (tmr *Timers) Reset(now time.Time) {
	tmr.Delay = 0
	tmr.Sound = 0
	tmr.lastDecay = now
}

// Update decays the timers if a decay interval has elapsed since the last
// decay. Called once per machine cycle; a non-zero timer loses at most one
// from a single call, so a machine running slower than 60Hz decays its
// timers slower too.
func (tmr *Timers) Update(now time.Time) {
	if now.Sub(tmr.lastDecay) < DecayInterval {
		return
	}
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
	tmr.lastDecay = now
}
