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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	kp := keypad.NewKeypad()

	_, ok := kp.LowestPressed()
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, kp.Set(0xc, true))
	test.ExpectSuccess(t, kp.Set(0x5, true))
	test.ExpectEquality(t, kp.String(), "-----5------C---")

	pressed, err := kp.IsPressed(0xc)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, pressed)

	pressed, err = kp.IsPressed(0x0)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, pressed)

	k, ok := kp.LowestPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x5)

	test.ExpectSuccess(t, kp.Set(0x5, false))
	k, ok = kp.LowestPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xc)

	kp.Reset()
	_, ok = kp.LowestPressed()
	test.ExpectFailure(t, ok)
}

func TestInvalidKey(t *testing.T) {
	kp := keypad.NewKeypad()

	err := kp.Set(16, true)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))

	pressed, err := kp.IsPressed(0xff)
	test.ExpectFailure(t, pressed)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))
	test.ExpectEquality(t, err.Error(), "keypad: invalid key (255)")
}
