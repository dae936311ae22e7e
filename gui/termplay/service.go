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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/gui"
)

// escape sequences sent by the F2 key. the first is the xterm form, the
// second the VT220 form
var f2Sequences = []string{"\x1bOQ", "\x1b[12~"}

// translate the bytes read from the terminal into key names. the names match
// those returned by sdl.GetKeyName()
func translate(b []byte) []string {
	var keys []string

	s := string(b)
	for len(s) > 0 {
		if s[0] == 0x1b {
			matched := false
			for _, f := range f2Sequences {
				if strings.HasPrefix(s, f) {
					keys = append(keys, gui.KeyReset)
					s = s[len(f):]
					matched = true
					break
				}
			}
			if matched {
				continue
			}

			// a lone escape is the quit key. other escape sequences are
			// discarded in their entirety
			if len(s) == 1 {
				keys = append(keys, gui.KeyQuit)
			}
			return keys
		}

		switch c := s[0]; {
		case c == 0x03:
			// ctrl-c
			keys = append(keys, gui.KeyQuit)
		case c > 0x20 && c < 0x7f:
			keys = append(keys, strings.ToUpper(string(c)))
		}
		s = s[1:]
	}

	return keys
}

// Service implements gui.GUI interface.
func (tp *TermPlay) Service() {
	// release keys that have been held long enough
	for k, n := range tp.held {
		n--
		if n <= 0 {
			delete(tp.held, k)
			gui.Send(tp.eventChannel, gui.EventKeyboard{Key: k, Down: false})
		} else {
			tp.held[k] = n
		}
	}

	for {
		select {
		case b := <-tp.input:
			for _, k := range translate(b) {
				tp.press(k)
			}
		default:
			return
		}
	}
}

func (tp *TermPlay) press(key string) {
	if key == gui.KeyQuit {
		gui.Send(tp.eventChannel, gui.EventQuit{})
		return
	}

	// a repeated key press extends the hold
	if _, ok := tp.held[key]; !ok {
		gui.Send(tp.eventChannel, gui.EventKeyboard{Key: key, Down: true})
	}
	tp.held[key] = tp.holdFrames
}
