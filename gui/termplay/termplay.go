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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/version"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// DefaultHoldFrames is the number of frames a key is held down for after a
// key press is read from the terminal. terminals do not report key releases.
const DefaultHoldFrames = 6

// the terminal device opened for input
const ttyDevice = "/dev/tty"

// TermPlay is an implementation of the gui.GUI interface for ANSI terminals.
type TermPlay struct {
	eventChannel chan gui.Event

	tty *term.Term
	out *bufio.Writer

	// key presses read from the terminal by the reader goroutine
	input chan []byte

	// keys currently held down and the number of frames remaining before
	// they are released
	held       map[string]int
	holdFrames int

	romName string
	sound   bool

	// the status line of the most recent frame drawn to the terminal
	lastStatus string
}

// NewTermPlay is the preferred method of initialisation for TermPlay. The
// output terminal must be large enough to show the entire display and the
// status line.
func NewTermPlay(romName string) (*TermPlay, error) {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, curated.Errorf(gui.GUIError, "stdout is not a terminal")
	}

	cols, rows, err := xterm.GetSize(fd)
	if err != nil {
		return nil, curated.Errorf(gui.GUIError, err)
	}
	if cols < display.Width || rows < Rows {
		return nil, curated.Errorf(gui.GUIError,
			fmt.Sprintf("terminal too small (%dx%d). requires %dx%d", cols, rows, display.Width, Rows))
	}

	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(gui.GUIError, err)
	}

	tp := newTermPlay(os.Stdout, romName)
	tp.tty = tty

	go tp.reader()

	io.WriteString(tp.out, hideCursor+clearScreen)
	tp.out.Flush()

	return tp, nil
}

func newTermPlay(out io.Writer, romName string) *TermPlay {
	return &TermPlay{
		out:        bufio.NewWriter(out),
		input:      make(chan []byte, 64),
		held:       make(map[string]int),
		holdFrames: DefaultHoldFrames,
		romName:    romName,
	}
}

// reader runs until the tty is closed.
func (tp *TermPlay) reader() {
	buf := make([]byte, 16)
	for {
		n, err := tp.tty.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			b := make([]byte, n)
			copy(b, buf[:n])
			select {
			case tp.input <- b:
			default:
			}
		}
	}
}

// SetHoldFrames changes the number of frames a key press is held for. Values
// less than one are ignored.
func (tp *TermPlay) SetHoldFrames(frames int) {
	if frames < 1 {
		return
	}
	tp.holdFrames = frames
}

// SetEventChannel implements gui.GUI interface.
func (tp *TermPlay) SetEventChannel(eventChannel chan gui.Event) {
	tp.eventChannel = eventChannel
}

// NewFrame implements gui.GUI interface. Nothing is written to the terminal
// if neither the framebuffer nor the status line have changed.
func (tp *TermPlay) NewFrame(fb gui.Framebuffer) error {
	status := tp.status()
	if d, ok := fb.(gui.DirtyFramebuffer); ok && !d.Dirty() && status == tp.lastStatus {
		return nil
	}
	tp.lastStatus = status

	io.WriteString(tp.out, cursorHome)
	Render(tp.out, fb, status)
	if err := tp.out.Flush(); err != nil {
		return curated.Errorf(gui.GUIError, err)
	}
	return nil
}

func (tp *TermPlay) status() string {
	s := version.Title()
	if tp.romName != "" {
		s = fmt.Sprintf("%s - %s", s, tp.romName)
	}
	if tp.sound {
		s = fmt.Sprintf("%s [BEEP]", s)
	}
	return s
}

// SetSound implements gui.GUI interface.
func (tp *TermPlay) SetSound(active bool) {
	tp.sound = active
}

// Destroy implements gui.GUI interface.
func (tp *TermPlay) Destroy() {
	io.WriteString(tp.out, showCursor+clearScreen+cursorHome)
	tp.out.Flush()

	if tp.tty != nil {
		_ = tp.tty.Restore()
		_ = tp.tty.Close()
	}
}
