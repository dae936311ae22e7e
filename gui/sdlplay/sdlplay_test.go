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
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
)

func TestInvalidScale(t *testing.T) {
	_, err := NewSdlPlay("", 0)
	test.ExpectSuccess(t, curated.Is(err, gui.GUIError))
}

func TestDestroyPartial(t *testing.T) {
	// nothing has been created. Destroy() is called in this state when the
	// window cannot be opened
	scr := &SdlPlay{}
	scr.Destroy()
	test.ExpectSuccess(t, scr.window == nil)
}

func TestTitle(t *testing.T) {
	scr := &SdlPlay{romName: "pong"}
	test.ExpectSuccess(t, len(scr.title()) > len("pong"))
	scr.sound = true
	test.ExpectEquality(t, scr.title()[len(scr.title())-len("[BEEP]"):], "[BEEP]")
}

func TestSetColours(t *testing.T) {
	scr := &SdlPlay{fg: DefaultForeground, bg: DefaultBackground}
	fg := gui.Colour{R: 0xff}
	bg := gui.Colour{B: 0xff}
	scr.SetColours(fg, bg)
	test.ExpectEquality(t, scr.fg, fg)
	test.ExpectEquality(t, scr.bg, bg)
}
