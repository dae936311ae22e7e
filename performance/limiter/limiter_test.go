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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestInvalidRate(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))

	_, err = limiter.NewFPSLimiter(-60)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// ten frames at 100fps should take roughly 100ms
	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)
	test.ExpectSuccess(t, elapsed >= 80*time.Millisecond, elapsed)
}

func TestHasWaited(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(10)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// the first trigger is 100ms away
	test.ExpectFailure(t, lim.HasWaited())

	time.Sleep(150 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}

func TestSetLimit(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(10)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectSuccess(t, lim.SetLimit(60))
	test.ExpectEquality(t, lim.RequestedFPS, 60)
	test.ExpectFailure(t, lim.SetLimit(0))
	test.ExpectEquality(t, lim.RequestedFPS, 60)
}

func TestMeasured(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(50)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// no measurement until the first measurement period has elapsed
	test.ExpectEquality(t, lim.Measured(), float32(0))

	// a little over one second at 50fps
	for i := 0; i < 60; i++ {
		lim.Wait()
	}
	m := lim.Measured()
	test.ExpectSuccess(t, m > 25 && m < 75, m)
}
