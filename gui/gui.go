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

// Framebuffer is the part of the display that a GUI needs in order to draw a
// frame. The display.Framebuffer type satisfies this interface.
type Framebuffer interface {
	Pixel(x int, y int) bool
}

// DirtyFramebuffer is implemented by framebuffers that know if they have
// changed since the previous call to Dirty(). The display.Framebuffer type
// satisfies this interface.
type DirtyFramebuffer interface {
	Framebuffer
	Dirty() bool
}

// GUI defines the operations that can be performed on the user interfaces
// that present the interpreter.
type GUI interface {
	// events are sent to the channel from the Service() function. a nil
	// channel means events are discarded
	SetEventChannel(chan Event)

	// Service checks for user input and pushes any resulting events onto the
	// event channel. for some implementations this MUST be called from the
	// main thread.
	Service()

	// NewFrame presents the framebuffer
	NewFrame(fb Framebuffer) error

	// SetSound indicates whether the sound timer is active. none of the GUI
	// implementations produce audio, this is visual indication only
	SetSound(active bool)

	// Destroy releases resources and restores the state of the host
	Destroy()
}

// Sentinal error returned if GUI cannot be created.
const (
	GUIError = "gui: %v"
)
