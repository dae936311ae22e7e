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

package gui

import "github.com/jetsetilly/gopher8/logger"

// Events are the things that happen in the gui, as a result of user
// interaction, and sent over a registered event channel.

// Event represents all the different type of events that can occur in the
// gui.
type Event interface{}

// EventQuit is sent when the gui has been closed.
type EventQuit struct{}

// EventKeyboard is sent on a keypress or release. Key is the name of the key
// as returned by sdl.GetKeyName(), terminal input is translated to the same
// names.
type EventKeyboard struct {
	Key  string
	Down bool
}

// Send pushes the event onto the channel. The channel is serviced by the same
// thread that calls Service() so an event is dropped, and logged, if the
// channel is full rather than blocking forever.
func Send(ch chan Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	default:
		logger.Logf(logger.Allow, "gui", "event channel full. dropping %T", ev)
	}
}
