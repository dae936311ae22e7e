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

package performance

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
)

// Sentinal errors returned by the performance package.
const (
	PerformanceError = "performance: %v"
	ProfileError     = "performance: profile: %v"
)

// sentinal error returned by the run loop when the duration has elapsed.
const timedOut = "performance timed out"

// the timer channel is only checked every performanceBrake instructions.
// checking the channel is relatively expensive
const performanceBrake = 1000

// Options for the Check() function.
type Options struct {
	Duration time.Duration
	Profile  Profile

	// write a graphviz representation of the interpreter to this file at the
	// end of the run
	Memviz string
}

// Check the performance of the interpreter. The attached ROM is run without a
// GUI, as quickly as possible, for the specified duration. The timers are
// ticked at the rate they would be ticked when running in real time, relative
// to the number of instructions executed. A frame is presented to a display
// digest on every timer tick.
//
// The interpreter is reset before the measurement starts and logging from
// the interpreter is suppressed for the duration of the run.
func Check(output io.Writer, interp *hardware.Interpreter, opts Options) error {
	if opts.Duration <= 0 {
		return curated.Errorf(PerformanceError, fmt.Sprintf("invalid duration (%v)", opts.Duration))
	}

	interp.Reset()
	interp.Quiet = true
	defer func() {
		interp.Quiet = false
	}()

	cps := interp.Prefs.CyclesPerSecond.Get().(int)
	hz := interp.Prefs.TimerFrequency.Get().(int)

	var hist Histogram

	// a frame is presented to the digest every time the timers are ticked
	dig := digest.NewVideo()
	var elapsed time.Duration

	runner := func() error {
		timeout := time.After(opts.Duration)
		startTime := time.Now()
		defer func() {
			elapsed = time.Since(startTime)
		}()

		brake := 0

		// the timers are ticked hz times for every cps instructions
		timerAcc := 0

		for {
			if err := interp.Step(); err != nil {
				return err
			}
			hist.Add(interp.CPU.LastResult)

			timerAcc += hz
			if timerAcc >= cps {
				timerAcc -= cps
				interp.TickTimers()
				if err := dig.NewFrame(interp.Display); err != nil {
					return err
				}
			}

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timeout:
					return curated.Errorf(timedOut)
				default:
				}
			}
		}
	}

	err := RunProfiler(opts.Profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	rate, accuracy := CalcRate(interp.Cycles, elapsed.Seconds(), cps)
	output.Write([]byte(fmt.Sprintf("%.0f cycles/sec (%d cycles in %.2f seconds) %.1f%% of %d cycles/sec\n",
		rate, interp.Cycles, elapsed.Seconds(), accuracy, cps)))
	output.Write([]byte(fmt.Sprintf("%d frames. display digest %s\n", dig.Frames(), dig.Hash())))
	output.Write([]byte(hist.String()))

	if opts.Memviz != "" {
		f, err := os.Create(opts.Memviz)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()
		memviz.Map(f, interp)
		output.Write([]byte(fmt.Sprintf("memviz written to %s\n", opts.Memviz)))
	}

	return nil
}
