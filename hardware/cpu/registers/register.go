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

// Register is an 8-bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		label: label,
		value: val,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the register name.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the unwrapped sum is greater than
// 255.
func (r *Register) Add(val uint8) bool {
	sum := uint16(r.value) + uint16(val)
	r.value = uint8(sum)
	return sum > 0xff
}

// Subtract value from register. Returns true if the register value was
// greater than the subtracted value.
func (r *Register) Subtract(val uint8) bool {
	noBorrow := r.value > val
	r.value -= val
	return noBorrow
}

// SubtractFrom replaces the register value with the register value subtracted
// from val. Returns true if val was greater than the register value.
func (r *Register) SubtractFrom(val uint8) bool {
	noBorrow := val > r.value
	r.value = val - r.value
	return noBorrow
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// SHR shifts the register one bit to the right. Returns the least significant
// bit as it was before the shift.
func (r *Register) SHR() bool {
	lsb := r.value&0x01 == 0x01
	r.value >>= 1
	return lsb
}

// SHL shifts the register one bit to the left. Returns the most significant
// bit as it was before the shift.
func (r *Register) SHL() bool {
	msb := r.value&0x80 == 0x80
	r.value <<= 1
	return msb
}
