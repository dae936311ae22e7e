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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// PlayError is the pattern for all errors returned by Play().
const PlayError = "playmode: %v"

// sentinal error returned when the user has asked to quit.
const quitEvent = "user input quit event"

// size of the event channel. the channel is drained every frame.
const eventChannelSize = 64

type playmode struct {
	interp *hardware.Interpreter
	gui    gui.GUI

	events  chan gui.Event
	intChan chan os.Signal

	// cycles per frame are calculated with integer arithmetic. the remainder
	// of the division is carried into the next frame
	remainder int

	frames int
}

func newPlaymode(interp *hardware.Interpreter, g gui.GUI) *playmode {
	pl := &playmode{
		interp:  interp,
		gui:     g,
		events:  make(chan gui.Event, eventChannelSize),
		intChan: make(chan os.Signal, 1),
	}
	g.SetEventChannel(pl.events)
	return pl
}

// Play runs the interpreter with the GUI until the user quits. A ROM should
// have been attached to the interpreter before calling Play().
//
// The driver loop runs at the timer frequency. Each frame services the GUI,
// executes the number of instructions required to maintain the cycles per
// second preference, ticks the timers and presents the display.
//
// Step errors end the loop and are returned.
func Play(interp *hardware.Interpreter, g gui.GUI) error {
	pl := newPlaymode(interp, g)

	lmtr, err := limiter.NewFPSLimiter(interp.Prefs.TimerFrequency.Get().(int))
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer lmtr.Stop()

	// ctrl-c is treated the same as a quit event
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	for {
		err := pl.frame()
		if err != nil {
			if curated.Is(err, quitEvent) {
				logger.Logf(logger.Allow, "playmode", "quit after %d frames (%.1f fps)", pl.frames, lmtr.Measured())
				return nil
			}
			return curated.Errorf(PlayError, err)
		}

		// the timer frequency preference may have been changed
		if hz := interp.Prefs.TimerFrequency.Get().(int); hz != lmtr.RequestedFPS {
			if err := lmtr.SetLimit(hz); err != nil {
				return curated.Errorf(PlayError, err)
			}
		}

		lmtr.Wait()
	}
}

// frame runs a single frame of the driver loop.
func (pl *playmode) frame() error {
	pl.gui.Service()

	if err := pl.eventHandler(); err != nil {
		return err
	}

	for i := pl.cycles(); i > 0; i-- {
		if err := pl.interp.Step(); err != nil {
			return err
		}
	}

	pl.interp.TickTimers()

	pl.gui.SetSound(pl.interp.Timers.SoundActive())
	if err := pl.gui.NewFrame(pl.interp.Display); err != nil {
		return err
	}

	pl.frames++

	return nil
}

// cycles returns the number of instructions to execute in the next frame.
func (pl *playmode) cycles() int {
	cps := pl.interp.Prefs.CyclesPerSecond.Get().(int)
	hz := pl.interp.Prefs.TimerFrequency.Get().(int)

	n := cps + pl.remainder
	pl.remainder = n % hz
	return n / hz
}
