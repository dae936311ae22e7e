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

// Package hardware is the base package for the interpreter. The Interpreter
// type gathers the memory, CPU, display, keypad and timers into a single
// machine.
//
// The interpreter does not run by itself. The driver calls Step() to execute
// one instruction and TickTimers() at the timer frequency. Keys are set
// directly on the Keypad field.
//
//	interp, err := hardware.NewInterpreter(nil)
//	err = interp.AttachROM(romloader.NewLoader("roms/pong.ch8"))
//	for {
//		err = interp.Step()
//		...
//	}
//
// A stack error halts the interpreter. Every subsequent call to Step()
// returns the Halted error until Reset() is called.
package hardware
