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

// Package random is the source of random numbers for the emulated machine.
// The RND instruction is the only consumer.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator for the emulation.
type Random struct {
	rand *rand.Rand

	// use zero seed rather than the random base seed, giving a predictable
	// sequence. this is only really useful for testing. must be set before
	// the first call to Intn()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Intn returns a random integer in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	// the underlying source is created on first use so that the ZeroSeed
	// field has had a chance to be set
	if rnd.rand == nil {
		seed := baseSeed
		if rnd.ZeroSeed {
			seed = 0
		}
		rnd.rand = rand.New(rand.NewSource(seed))
	}

	return rnd.rand.Intn(n)
}
