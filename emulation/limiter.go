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

package emulation

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Limiter paces a loop to a requested number of cycles per second and
// measures the rate actually being achieved. Wait() is intended to be
// called from a single goroutine; the rate functions can be called from
// anywhere.
type Limiter struct {
	// whether Wait() actually waits. non-zero means limiting is on
	limit int32

	// the requested and measured rates. both hold float32
	requested atomic.Value
	actual    atomic.Value

	// measurement state. only ever touched from the Wait() goroutine
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	// the ticker lives in its own goroutine, forwarding ticks to the sync
	// channel. rate changes go through reqRate so that the ticker can be
	// swapped without racing the Wait() call
	sync    chan bool
	reqRate chan time.Duration
	quit    chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter
// type.
func NewLimiter(hz float32) *Limiter {
	lmtr := &Limiter{
		limit:   1,
		sync:    make(chan bool),
		reqRate: make(chan time.Duration),
		quit:    make(chan bool),
	}
	lmtr.requested.Store(float32(0))
	lmtr.actual.Store(float32(0))
	lmtr.actualRefTime = time.Now()

	go func() {
		// an arbitrary period to begin with. SetRate() replaces it shortly
		tck := time.NewTicker(time.Millisecond)
		defer tck.Stop()

		for {
			select {
			case <-tck.C:
				select {
				case lmtr.sync <- true:

				// accepting rate changes while trying to signal sync is
				// what prevents the deadlock between a stalled Wait() and
				// a pending SetRate()
				case d := <-lmtr.reqRate:
					tck.Stop()
					tck = time.NewTicker(d)

				case <-lmtr.quit:
					return
				}

			// and again here, because waiting out a very long tick before
			// honouring a rate change would make SetRate() sluggish
			case d := <-lmtr.reqRate:
				tck.Stop()
				tck = time.NewTicker(d)

			case <-lmtr.quit:
				return
			}
		}
	}()

	lmtr.SetRate(hz)

	return lmtr
}

// SetRate changes the requested rate. Rates of zero or less are ignored.
func (lmtr *Limiter) SetRate(hz float32) {
	if hz <= 0 {
		return
	}

	lmtr.requested.Store(hz)

	d, err := time.ParseDuration(fmt.Sprintf("%fs", 1.0/hz))
	if err != nil {
		return
	}

	select {
	case lmtr.reqRate <- d:
	case <-lmtr.quit:
	}
}

// Rate returns the requested rate.
func (lmtr *Limiter) Rate() float32 {
	return lmtr.requested.Load().(float32)
}

// Actual returns the most recent measurement of the rate being achieved.
// Zero until enough cycles have passed for a measurement.
func (lmtr *Limiter) Actual() float32 {
	return lmtr.actual.Load().(float32)
}

// SetLimit turns rate limiting off or back on. With limiting off Wait()
// returns immediately and the loop runs as fast as the host allows.
func (lmtr *Limiter) SetLimit(limit bool) {
	if limit {
		atomic.StoreInt32(&lmtr.limit, 1)
	} else {
		atomic.StoreInt32(&lmtr.limit, 0)
	}
}

// Wait until the next tick of the requested rate.
func (lmtr *Limiter) Wait() {
	if atomic.LoadInt32(&lmtr.limit) != 0 {
		select {
		case <-lmtr.sync:
		case <-lmtr.quit:
			return
		}
	}
	lmtr.measureActual()
}

// Stop the limiter's ticker goroutine. Wait() must not be called after
// Stop().
func (lmtr *Limiter) Stop() {
	close(lmtr.quit)
}

// called once per Wait() to keep the actual rate measurement fresh. the
// measurement window adjusts itself to roughly a second's worth of cycles.
func (lmtr *Limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCtTarget <= 0 {
		lmtr.actualCtTarget = int(lmtr.Rate())
	}
	if lmtr.actualCt >= lmtr.actualCtTarget {
		t := time.Now()
		actual := float32(lmtr.actualCt) / float32(t.Sub(lmtr.actualRefTime).Seconds())
		lmtr.actual.Store(actual)

		if actual > 1 {
			lmtr.actualCtTarget = int(actual)
		} else {
			lmtr.actualCtTarget = 1
		}

		lmtr.actualRefTime = t
		lmtr.actualCt = 0
	}
}
