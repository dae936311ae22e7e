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

package instructions

// Category of an operator describes its effect.
type Category int

// List of valid Category values.
const (
	Unknown Category = iota
	Flow
	Subroutine
	Skip
	Load
	Arithmetic
	Memory
	Display
	Input
	Timer

	// the number of categories, including Unknown
	NumCategories
)

func (c Category) String() string {
	switch c {
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Load:
		return "Load"
	case Arithmetic:
		return "Arithmetic"
	case Memory:
		return "Memory"
	case Display:
		return "Display"
	case Input:
		return "Input"
	case Timer:
		return "Timer"
	}
	return "Unknown"
}

// Category returns the category of the operator.
func (op Operator) Category() Category {
	switch op {
	case JP, JPV0:
		return Flow
	case CALL, RET:
		return Subroutine
	case SEImm, SNEImm, SEReg, SNEReg:
		return Skip
	case LDImm, LDReg, LDI, RND:
		return Load
	case ADDImm, OR, AND, XOR, ADDReg, SUB, SHR, SUBN, SHL, ADDI:
		return Arithmetic
	case LDF, BCD, STRegs, LDRegs:
		return Memory
	case CLS, DRW:
		return Display
	case SKP, SKNP, LDKey:
		return Input
	case LDVxDT, LDDTVx, LDSTVx:
		return Timer
	}
	return Unknown
}
