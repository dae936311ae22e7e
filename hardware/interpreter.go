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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/romloader"
)

// Halted is returned by Step() when the interpreter has stopped because of an
// earlier error.
const Halted = "hardware: interpreter halted (%v)"

// Interpreter is the entire CHIP-8 machine.
type Interpreter struct {
	Prefs *preferences.Preferences

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *display.Framebuffer
	Keypad  *keypad.Keypad
	Timers  *timers.Timers
	Random  *random.Random

	// the most recently attached ROM. retained so that it can be reinserted
	// on reset
	rom romloader.Loader

	// the error that halted the interpreter
	halted error

	// number of instructions executed since the last reset
	Cycles uint64

	// suppress log entries from the interpreter
	Quiet bool
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. If prefs is nil then the default preferences are used.
func NewInterpreter(prefs *preferences.Preferences) (*Interpreter, error) {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}

	interp := &Interpreter{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Display: display.NewFramebuffer(),
		Keypad:  keypad.NewKeypad(),
		Timers:  timers.NewTimers(),
		Random:  random.NewRandom(),
	}

	interp.CPU = cpu.NewCPU(interp, interp.Mem, interp.Display, interp.Keypad, interp.Timers, interp.Random)
	interp.Reset()

	return interp, nil
}

// AllowLogging implements the logger.Permission interface.
func (interp *Interpreter) AllowLogging() bool {
	return !interp.Quiet
}

func (interp *Interpreter) String() string {
	return interp.CPU.String()
}

// Reset the interpreter. Memory is cleared except for the font and the
// attached ROM, which is reloaded. A halted interpreter will run again.
func (interp *Interpreter) Reset() {
	interp.Mem.Reset()
	interp.CPU.Reset()
	interp.Display.Clear()
	interp.Keypad.Reset()
	interp.Timers.Reset()

	interp.Random.ZeroSeed = interp.Prefs.ZeroSeed.Get().(bool)
	interp.Random.Reset()

	interp.halted = nil
	interp.Cycles = 0

	if interp.rom.HasLoaded() {
		// the ROM has been checked by AttachROM() so this cannot fail
		_ = interp.Mem.LoadProgram(interp.rom.Data)
	}
}

// AttachROM loads the ROM and resets the interpreter with the ROM in memory.
// The interpreter is unchanged if the ROM cannot be loaded or is too large.
func (interp *Interpreter) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	// check that the program fits before changing anything
	if len(ld.Data) > memory.MaxProgramSize {
		return curated.Errorf(memory.ProgramTooLarge, len(ld.Data), memory.MaxProgramSize)
	}

	interp.rom = ld
	interp.Reset()

	logger.Logf(interp, "hardware", "attached %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// ROM returns the currently attached ROM.
func (interp *Interpreter) ROM() romloader.Loader {
	return interp.rom
}

// Step executes exactly one instruction.
func (interp *Interpreter) Step() error {
	if interp.halted != nil {
		return curated.Errorf(Halted, interp.halted)
	}

	if err := interp.CPU.ExecuteInstruction(); err != nil {
		interp.halted = err
		addr := interp.CPU.LastResult.Address
		logger.Logf(interp, "hardware", "%v at %#03x", err, addr)
		logger.Logf(interp, "hardware", "memory %s", strings.TrimSuffix(interp.Mem.Dump(addr, addr), "\n"))
		return err
	}

	interp.Cycles++

	return nil
}

// Halted returns true if the interpreter has stopped because of an error.
func (interp *Interpreter) Halted() bool {
	return interp.halted != nil
}

// TickTimers decrements the delay and sound timers. The timers are unchanged
// if the DecayTimers preference is false.
func (interp *Interpreter) TickTimers() {
	if interp.Prefs.DecayTimers.Get().(bool) {
		interp.Timers.Tick()
	}
}

// SetKey sets the state of the key on the keypad. Invalid keys are logged and
// ignored.
func (interp *Interpreter) SetKey(key uint8, down bool) {
	if err := interp.Keypad.Set(key, down); err != nil {
		logger.Log(interp, "hardware", err)
	}
}

// Summary returns a one line description of the interpreter state.
func (interp *Interpreter) Summary() string {
	return fmt.Sprintf("%s | %s | cycles=%d", interp.CPU.LastResult, interp.Timers, interp.Cycles)
}
