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
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// ANSI control sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[K"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Rows is the number of terminal lines required by Render(). Each line shows
// two rows of the display and there is one status line.
const Rows = display.Height/2 + 1

// block characters indexed by (top << 1 | bottom)
var blocks = [4]string{" ", "▄", "▀", "█"}

// Render writes the framebuffer to the writer using half block characters so
// that each character cell shows two vertically adjacent pixels. The status
// string is written on the line after the display. Lines end with CR LF
// because the terminal is in raw mode.
func Render(w io.Writer, fb gui.Framebuffer, status string) {
	s := strings.Builder{}
	s.Grow(Rows * (display.Width*3 + 2))

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			i := 0
			if fb.Pixel(x, y) {
				i |= 0b10
			}
			if fb.Pixel(x, y+1) {
				i |= 0b01
			}
			s.WriteString(blocks[i])
		}
		s.WriteString("\r\n")
	}

	s.WriteString(status)
	s.WriteString(clearLine)

	io.WriteString(w, s.String())
}
