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

// Package display implements the 64x32 monochrome framebuffer. Pixels are
// changed only by DrawSprite() and Clear().
package display

import "strings"

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Framebuffer is the monochrome display of the interpreter.
type Framebuffer struct {
	pixels [Height][Width]bool

	// set whenever a pixel changes. front ends can use this to skip
	// redrawing an unchanged frame
	dirty bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{dirty: true}
}

// Clear all pixels.
func (fb *Framebuffer) Clear() {
	fb.pixels = [Height][Width]bool{}
	fb.dirty = true
}

// Pixel returns the state of the pixel. Coordinates wrap around the edges of
// the framebuffer.
func (fb *Framebuffer) Pixel(x int, y int) bool {
	return fb.pixels[wrap(y, Height)][wrap(x, Width)]
}

// DrawSprite XORs the sprite onto the framebuffer with the top left corner at
// the coordinates. Each byte of the sprite is one row of eight pixels, most
// significant bit on the left. Pixels that fall off the edge of the
// framebuffer wrap around to the opposite edge.
//
// Returns true if any set pixel was turned off.
func (fb *Framebuffer) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	var collision bool
	for row, b := range sprite {
		py := wrap(int(y)+row, Height)
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) == 0 {
				continue
			}
			px := wrap(int(x)+bit, Width)
			if fb.pixels[py][px] {
				collision = true
			}
			fb.pixels[py][px] = !fb.pixels[py][px]
		}
	}
	if len(sprite) > 0 {
		fb.dirty = true
	}
	return collision
}

// Dirty returns true if the framebuffer has changed since the previous call
// to Dirty().
func (fb *Framebuffer) Dirty() bool {
	d := fb.dirty
	fb.dirty = false
	return d
}

// String renders the framebuffer as text. Set pixels are shown as a hash and
// unset pixels as a dot.
func (fb *Framebuffer) String() string {
	s := strings.Builder{}
	for y := range fb.pixels {
		for x := range fb.pixels[y] {
			if fb.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
