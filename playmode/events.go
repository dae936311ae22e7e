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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
)

// drain the event channel. returns the quitEvent error if the user has asked
// to quit.
func (pl *playmode) eventHandler() error {
	for {
		select {
		case <-pl.intChan:
			return curated.Errorf(quitEvent)

		case ev := <-pl.events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				return curated.Errorf(quitEvent)
			case gui.EventKeyboard:
				if err := pl.keyboard(ev); err != nil {
					return err
				}
			}

		default:
			return nil
		}
	}
}

func (pl *playmode) keyboard(ev gui.EventKeyboard) error {
	switch ev.Key {
	case gui.KeyQuit:
		if ev.Down {
			return curated.Errorf(quitEvent)
		}
	case gui.KeyReset:
		if ev.Down {
			// reset reinserts the attached ROM
			pl.interp.Reset()
			logger.Logf(logger.Allow, "playmode", "reset %s", pl.interp.ROM().ShortName())
		}
	default:
		if k, ok := gui.KeypadKey(ev.Key); ok {
			pl.interp.SetKey(k, ev.Down)
		}
	}
	return nil
}
