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

// Package limiter restricts events to a fixed rate.
//
// A new FpsLimiter is created with:
//
//	lim, err := limiter.NewFPSLimiter(60)
//
// Operations are then stalled with the Wait() function:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
//
// The limiter keeps a running measurement of the rate at which Wait() actually
// returns. This is available through the Measured() function.
package limiter

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// InvalidRate is returned when a rate of zero or less is requested.
const InvalidRate = "limiter: invalid rate (%d)"

// how often the measured rate is updated.
const measurementPeriod = time.Second

// FpsLimiter will trigger at the requested frames per second.
type FpsLimiter struct {
	RequestedFPS int

	ticker *time.Ticker

	// frames counted since the start of the measurement period
	frames    int
	periodEnd time.Time

	// float32 bits of the most recent measurement
	measured atomic.Uint32
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}

	lim.RequestedFPS = framesPerSecond
	period := time.Second / time.Duration(framesPerSecond)

	if lim.ticker == nil {
		lim.ticker = time.NewTicker(period)
	} else {
		lim.ticker.Reset(period)
	}

	lim.frames = 0
	lim.periodEnd = time.Now().Add(measurementPeriod)

	return nil
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
	lim.measure()
}

// HasWaited returns true if the trigger has already happened. It does not
// block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		lim.measure()
		return true
	default:
		return false
	}
}

func (lim *FpsLimiter) measure() {
	lim.frames++
	now := time.Now()
	if now.After(lim.periodEnd) {
		elapsed := now.Sub(lim.periodEnd.Add(-measurementPeriod)).Seconds()
		lim.measured.Store(math.Float32bits(float32(float64(lim.frames) / elapsed)))
		lim.frames = 0
		lim.periodEnd = now.Add(measurementPeriod)
	}
}

// Measured returns the rate at which Wait() returned over the most recent
// measurement period. Safe to call from any goroutine.
func (lim *FpsLimiter) Measured() float32 {
	return math.Float32frombits(lim.measured.Load())
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
