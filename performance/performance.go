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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/curated"
	"github.com/jetsetilly/gopherchip8/emulation"
	"github.com/jetsetilly/gopherchip8/hardware/chip8"
)

// Check runs the supplied cartridge for a fixed period of time and
// reports how many machine cycles were executed, alongside the accuracy
// of that figure when compared to the requested frequency.
//
// The machine will optionally generate CPU and memory profiles.
func Check(output io.Writer, profile bool, cartload *cartridgeloader.Loader, duration string, freq float32, uncapped bool) error {
	c8 := chip8.NewChip8()

	err := c8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if freq <= 0 {
		freq = emulation.DefaultFrequency
	}

	lmtr := emulation.NewLimiter(freq)
	defer lmtr.Stop()
	lmtr.SetLimit(!uncapped)

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// number of cycles executed during the measurement period
	cycles := 0
	counting := false

	runner := func() error {
		// setup trigger that expires when duration has elapsed. a false
		// on the channel marks the start of the measurement period and a
		// true marks the end

		timerChan := make(chan bool)

		// force a two second leadtime to allow the limiter to settle
		// down and then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// run until specified time elapses
		return c8.Run(func() (bool, error) {
			lmtr.Wait()

			select {
			case v := <-timerChan:
				if v {
					return false, nil
				}
				counting = true
			default:
			}

			if counting {
				cycles++
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate, accuracy := CalcCycleRate(cycles, dur.Seconds(), lmtr.Rate())
	output.Write([]byte(fmt.Sprintf("%.0f cycles/sec (%d cycles in %.2f seconds) %.1f%%\n", rate, cycles, dur.Seconds(), accuracy)))

	return nil
}
