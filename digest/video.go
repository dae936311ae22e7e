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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// the pixels of a frame are packed eight to a byte, after the digest of the
// previous frame
const frameStart = sha1.Size
const frameLength = frameStart + display.Width*display.Height/8

// Video is a headless implementation of the gui.GUI interface that maintains
// a running hash of every frame.
type Video struct {
	digest [sha1.Size]byte
	buffer []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		buffer: make([]byte, frameLength),
	}
}

// Hash returns the current digest as a hex string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Video) String() string {
	return dig.Hash()
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest returns the digest to its initial state.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// SetEventChannel implements gui.GUI interface. There are never any events.
func (dig *Video) SetEventChannel(_ chan gui.Event) {
}

// Service implements gui.GUI interface.
func (dig *Video) Service() {
}

// NewFrame implements gui.GUI interface.
func (dig *Video) NewFrame(fb gui.Framebuffer) error {
	copy(dig.buffer, dig.digest[:])

	i := frameStart
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x += 8 {
			var b byte
			for bit := 0; bit < 8; bit++ {
				if fb.Pixel(x+bit, y) {
					b |= 0x80 >> bit
				}
			}
			dig.buffer[i] = b
			i++
		}
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++

	return nil
}

// SetSound implements gui.GUI interface.
func (dig *Video) SetSound(_ bool) {
}

// Destroy implements gui.GUI interface.
func (dig *Video) Destroy() {
}
