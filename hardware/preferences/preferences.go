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

// Package preferences collates the preference values used by the hardware
// package.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// Default values.
const (
	DefaultCyclesPerSecond = 600
	DefaultTimerFrequency  = 60
	DefaultDecayTimers     = true
	DefaultZeroSeed        = false
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions executed every second
	CyclesPerSecond prefs.Int

	// frequency at which the delay and sound timers are decremented. this is
	// also the frame rate of the driver loop
	TimerFrequency prefs.Int

	// if false the timers never count down
	DecayTimers prefs.Bool

	// use a zero seed for the random number generator so that the same
	// sequence of numbers is produced every time
	ZeroSeed prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	p := NewDefaults()

	pth, err := paths.ResourcePath("", DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.cpu.cyclesPerSecond", &p.CyclesPerSecond)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.timers.frequency", &p.TimerFrequency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.timers.decay", &p.DecayTimers)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.random.zeroSeed", &p.ZeroSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaults returns a Preferences instance with default values that is not
// associated with a preferences file. Load() and Save() do nothing.
func NewDefaults() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	p.CyclesPerSecond.SetHookPre(positive)
	p.TimerFrequency.SetHookPre(positive)
	return p
}

// SetDefaults sets all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.CyclesPerSecond.Set(DefaultCyclesPerSecond)
	p.TimerFrequency.Set(DefaultTimerFrequency)
	p.DecayTimers.Set(DefaultDecayTimers)
	p.ZeroSeed.Set(DefaultZeroSeed)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// rates must be greater than zero.
func positive(v prefs.Value) error {
	if v.(int) <= 0 {
		return fmt.Errorf("value must be greater than zero (%d)", v.(int))
	}
	return nil
}
