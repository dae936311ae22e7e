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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error returned by ParseColour().
const ColourError = "colour: %v"

// Colour is an RGB triple.
type Colour struct {
	R, G, B uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColour converts a six digit hexadecimal string to a Colour. A leading
// hash is optional.
func ParseColour(s string) (Colour, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Colour{}, curated.Errorf(ColourError, fmt.Sprintf("not a six digit hex value (%s)", s))
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Colour{}, curated.Errorf(ColourError, fmt.Sprintf("not a six digit hex value (%s)", s))
	}

	return Colour{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
