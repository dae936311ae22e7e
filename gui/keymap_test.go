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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeymap(t *testing.T) {
	rows := []string{"1234", "QWER", "ASDF", "ZXCV"}
	expected := []uint8{
		0x1, 0x2, 0x3, 0xc,
		0x4, 0x5, 0x6, 0xd,
		0x7, 0x8, 0x9, 0xe,
		0xa, 0x0, 0xb, 0xf,
	}

	seen := make(map[uint8]bool)

	i := 0
	for _, r := range rows {
		for _, c := range r {
			k, ok := gui.KeypadKey(string(c))
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, k, expected[i])
			seen[k] = true
			i++
		}
	}

	// every keypad key is reachable
	test.ExpectEquality(t, len(seen), 16)
}

func TestKeymapCase(t *testing.T) {
	k, ok := gui.KeypadKey("q")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x4))
}

func TestKeymapUnmapped(t *testing.T) {
	_, ok := gui.KeypadKey("P")
	test.ExpectFailure(t, ok)
	_, ok = gui.KeypadKey(gui.KeyQuit)
	test.ExpectFailure(t, ok)
	_, ok = gui.KeypadKey("")
	test.ExpectFailure(t, ok)
}

func TestSend(t *testing.T) {
	ch := make(chan gui.Event, 1)
	gui.Send(ch, gui.EventQuit{})

	// channel is full. this should not block
	gui.Send(ch, gui.EventQuit{})
	test.ExpectEquality(t, len(ch), 1)

	// nil channel is ignored
	gui.Send(nil, gui.EventQuit{})
}
