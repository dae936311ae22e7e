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

package registers

import "fmt"

// ProgramCounter is a 16-bit register. Used for the program counter and the
// index register.
type ProgramCounter struct {
	label string
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16, label string) ProgramCounter {
	return ProgramCounter{
		label: label,
		value: val,
	}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%s=%#03x", pc.label, pc.value)
}

// Label returns the register name.
func (pc ProgramCounter) Label() string {
	return pc.label
}

// Value returns the current value of the register.
func (pc ProgramCounter) Value() uint16 {
	return pc.value
}

// Load value into register.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add value to register. The result wraps at 16 bits.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}

// Subtract value from register. The result wraps at 16 bits.
func (pc *ProgramCounter) Subtract(val uint16) {
	pc.value -= val
}
