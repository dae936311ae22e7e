// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// Random is a random number generator for the emulation.
type Random struct {
	src *rand.Rand

	// use a seed of zero rather than a time based seed
	ZeroSeed bool

	// the seed used by the most recent call to Reset()
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reset()
	return rnd
}

// Reset the random number generator. The seed depends on the ZeroSeed field.
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.Seed = 0
	} else {
		rnd.Seed = time.Now().UnixNano()
	}
	rnd.src = rand.New(rand.NewSource(rnd.Seed))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.src.Intn(n)
}

// Byte returns a random number in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.src.Intn(256))
}
