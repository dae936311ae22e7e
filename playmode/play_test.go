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

package playmode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// mockGUI sends the scripted events on the specified frames.
type mockGUI struct {
	events chan gui.Event
	script map[int][]gui.Event

	serviced int
	frames   int
	sound    bool
}

func (m *mockGUI) SetEventChannel(ch chan gui.Event) {
	m.events = ch
}

func (m *mockGUI) Service() {
	for _, ev := range m.script[m.serviced] {
		gui.Send(m.events, ev)
	}
	m.serviced++
}

func (m *mockGUI) NewFrame(_ gui.Framebuffer) error {
	m.frames++
	return nil
}

func (m *mockGUI) SetSound(active bool) {
	m.sound = active
}

func (m *mockGUI) Destroy() {
}

func newTestPlaymode(t *testing.T, script map[int][]gui.Event, program ...uint8) (*playmode, *mockGUI) {
	t.Helper()

	interp, err := hardware.NewInterpreter(nil)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))
	test.DemandSuccess(t, interp.AttachROM(romloader.NewLoader(fn)))

	m := &mockGUI{script: script}
	return newPlaymode(interp, m), m
}

// ADD V0, 1 followed by a jump back to the ADD
var counter = []uint8{0x70, 0x01, 0x12, 0x00}

func TestCycleBudget(t *testing.T) {
	pl, _ := newTestPlaymode(t, nil, counter...)

	// default preferences give exactly ten cycles per frame
	test.ExpectEquality(t, pl.cycles(), 10)
	test.ExpectEquality(t, pl.cycles(), 10)

	// the remainder is carried between frames
	test.DemandSuccess(t, pl.interp.Prefs.CyclesPerSecond.Set(500))
	test.ExpectEquality(t, pl.cycles(), 8)
	test.ExpectEquality(t, pl.cycles(), 8)
	test.ExpectEquality(t, pl.cycles(), 9)
	test.ExpectEquality(t, pl.remainder, 0)

	// fewer cycles per second than frames per second
	test.DemandSuccess(t, pl.interp.Prefs.CyclesPerSecond.Set(30))
	test.ExpectEquality(t, pl.cycles(), 0)
	test.ExpectEquality(t, pl.cycles(), 1)
}

func TestFrame(t *testing.T) {
	pl, m := newTestPlaymode(t, nil, counter...)

	test.ExpectSuccess(t, pl.frame())
	test.ExpectEquality(t, m.frames, 1)
	test.ExpectEquality(t, m.serviced, 1)

	// ten cycles is five iterations of the loop
	test.ExpectEquality(t, pl.interp.CPU.V[0].Value(), uint8(5))
	test.ExpectEquality(t, pl.interp.Cycles, uint64(10))
}

func TestKeypadEvents(t *testing.T) {
	script := map[int][]gui.Event{
		0: {gui.EventKeyboard{Key: "Q", Down: true}},
		1: {gui.EventKeyboard{Key: "Q", Down: false}, gui.EventKeyboard{Key: "P", Down: true}},
	}
	pl, _ := newTestPlaymode(t, script, counter...)

	test.ExpectSuccess(t, pl.frame())
	pressed, err := pl.interp.Keypad.IsPressed(0x4)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, pressed)

	test.ExpectSuccess(t, pl.frame())
	pressed, err = pl.interp.Keypad.IsPressed(0x4)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, pressed)

	// unmapped keys have no effect
	_, ok := pl.interp.Keypad.LowestPressed()
	test.ExpectFailure(t, ok)
}

func TestQuitEvents(t *testing.T) {
	pl, _ := newTestPlaymode(t, map[int][]gui.Event{0: {gui.EventQuit{}}}, counter...)
	test.ExpectSuccess(t, curated.Is(pl.frame(), quitEvent))

	pl, _ = newTestPlaymode(t, map[int][]gui.Event{1: {gui.EventKeyboard{Key: gui.KeyQuit, Down: true}}}, counter...)
	test.ExpectSuccess(t, pl.frame())
	test.ExpectSuccess(t, curated.Is(pl.frame(), quitEvent))
}

func TestResetEvent(t *testing.T) {
	pl, _ := newTestPlaymode(t, map[int][]gui.Event{1: {gui.EventKeyboard{Key: gui.KeyReset, Down: true}}}, counter...)

	test.ExpectSuccess(t, pl.frame())
	test.ExpectEquality(t, pl.interp.CPU.V[0].Value(), uint8(5))

	// the reset happens before the cycles of the second frame are run
	test.ExpectSuccess(t, pl.frame())
	test.ExpectEquality(t, pl.interp.CPU.V[0].Value(), uint8(5))
	test.ExpectEquality(t, pl.interp.Cycles, uint64(10))
}

func TestStepError(t *testing.T) {
	// RET with an empty stack
	pl, m := newTestPlaymode(t, nil, 0x00, 0xee)

	err := pl.frame()
	test.ExpectSuccess(t, curated.Is(err, cpu.StackUnderflow))
	test.ExpectSuccess(t, pl.interp.Halted())
	test.ExpectEquality(t, m.frames, 0)
}

func TestSoundIndicator(t *testing.T) {
	// LD V0, 2; LD ST, V0; JP 0x204
	pl, m := newTestPlaymode(t, nil, 0x60, 0x02, 0xf0, 0x18, 0x12, 0x04)

	test.ExpectSuccess(t, pl.frame())
	test.ExpectSuccess(t, m.sound)

	// the sound timer is not set again. it reaches zero on the second tick
	test.DemandSuccess(t, pl.interp.Prefs.CyclesPerSecond.Set(60))
	test.ExpectSuccess(t, pl.frame())
	test.ExpectFailure(t, m.sound)
}

func TestPlay(t *testing.T) {
	interp, err := hardware.NewInterpreter(nil)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, counter, 0o600))
	test.DemandSuccess(t, interp.AttachROM(romloader.NewLoader(fn)))

	m := &mockGUI{script: map[int][]gui.Event{3: {gui.EventQuit{}}}}
	test.ExpectSuccess(t, Play(interp, m))
	test.ExpectEquality(t, m.frames, 3)

	// step errors are returned
	interp.Reset()
	interp.Mem.Write(0x200, 0x00)
	interp.Mem.Write(0x201, 0xee)
	err = Play(interp, &mockGUI{})
	test.ExpectSuccess(t, curated.Is(err, PlayError))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
}
