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

// Package keypad implements the sixteen key hexadecimal keypad. Keys are set
// by the input handler and read by the CPU.
package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// InvalidKey is returned when a key index is outside of the range 0 to 15.
const InvalidKey = "keypad: invalid key (%d)"

// Keypad records which keys are held down.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := range kp.keys {
		if kp.keys[k] {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
}

// Set the state of the key.
func (kp *Keypad) Set(key uint8, down bool) error {
	if key >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	kp.keys[key] = down
	return nil
}

// IsPressed returns true if the key is held down. An invalid key is never
// pressed and an error is returned.
func (kp *Keypad) IsPressed(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(InvalidKey, key)
	}
	return kp.keys[key], nil
}

// LowestPressed returns the lowest numbered key that is held down. The second
// return value is false if no key is held down.
func (kp *Keypad) LowestPressed() (uint8, bool) {
	for k := range kp.keys {
		if kp.keys[k] {
			return uint8(k), true
		}
	}
	return 0, false
}
