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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// The default colours for lit and unlit pixels.
var (
	DefaultForeground = gui.Colour{R: 0xe0, G: 0xf0, B: 0xd0}
	DefaultBackground = gui.Colour{R: 0x10, G: 0x20, B: 0x18}
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects SDL event loop with the parent process
	eventChannel chan gui.Event

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer. it is equal to display.Width * display.Height * pixelDepth.
	pixels []byte

	// the amount of scaling applied to each pixel
	scale int32

	fg gui.Colour
	bg gui.Colour

	// whether the sound indicator is currently shown in the window title
	sound bool

	// the name of the ROM being played. forms part of the window title
	romName string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The window
// is scaled so that each pixel of the CHIP-8 display is a square of scale
// host pixels.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(romName string, scale int) (*SdlPlay, error) {
	if scale < 1 {
		return nil, curated.Errorf(gui.GUIError, fmt.Sprintf("scale must be at least 1 (%d)", scale))
	}

	scr := &SdlPlay{
		scale:   int32(scale),
		fg:      DefaultForeground,
		bg:      DefaultBackground,
		romName: romName,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(gui.GUIError, err)
	}

	scr.window, err = sdl.CreateWindow(scr.title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scr.scale, display.Height*scr.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	// texture is the same size as the pixel array. the renderer scales it to
	// fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// key events only. the event queue fills up with mouse events otherwise
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

func (scr *SdlPlay) title() string {
	t := version.Title()
	if scr.romName != "" {
		t = fmt.Sprintf("%s - %s", t, scr.romName)
	}
	if scr.sound {
		t = fmt.Sprintf("%s [BEEP]", t)
	}
	return t
}

// SetColours changes the foreground and background colours.
func (scr *SdlPlay) SetColours(fg gui.Colour, bg gui.Colour) {
	scr.fg = fg
	scr.bg = bg
}

// SetEventChannel implements gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(eventChannel chan gui.Event) {
	scr.eventChannel = eventChannel
}

// NewFrame implements gui.GUI interface.
func (scr *SdlPlay) NewFrame(fb gui.Framebuffer) error {
	i := 0
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			c := scr.bg
			if fb.Pixel(x, y) {
				c = scr.fg
			}
			scr.pixels[i] = c.R
			scr.pixels[i+1] = c.G
			scr.pixels[i+2] = c.B
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return curated.Errorf(gui.GUIError, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(gui.GUIError, err)
	}

	scr.renderer.Present()

	return nil
}

// SetSound implements gui.GUI interface.
func (scr *SdlPlay) SetSound(active bool) {
	if active == scr.sound {
		return
	}
	scr.sound = active
	scr.window.SetTitle(scr.title())
}

// Destroy implements gui.GUI interface. Also used to release a partially
// initialised SdlPlay.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		scr.texture.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}
