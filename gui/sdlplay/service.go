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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. servicing just one
	// event per frame is not enough because queued events will take one frame
	// longer to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.Send(scr.eventChannel, gui.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				gui.Send(scr.eventChannel, gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true})
			case sdl.KEYUP:
				gui.Send(scr.eventChannel, gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false})
			}
		}
	}
}
