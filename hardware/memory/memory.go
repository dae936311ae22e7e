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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// List of memory constants.
const (
	Size           = 4096
	AddressMask    = 0x0fff
	ProgramOrigin  = 0x200
	MaxProgramSize = Size - ProgramOrigin
)

// ProgramTooLarge is returned by LoadProgram() when the program will not fit
// in memory.
const ProgramTooLarge = "memory: program too large (%d bytes, maximum is %d)"

// Memory is the addressable memory of the interpreter.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is installed and all other bytes are zero.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes (program origin %#03x)", Size, ProgramOrigin)
}

// Reset zeroes all memory and reinstalls the font.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], font[:])
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address&AddressMask]
}

// Write the byte to address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address&AddressMask] = data
}

// LoadProgram copies the program data into memory starting at ProgramOrigin.
// Memory is not changed if the program is too large.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data), MaxProgramSize)
	}
	copy(mem.data[ProgramOrigin:], data)
	return nil
}

// Dump writes a hex dump of the memory between the two addresses. Addresses
// are masked and the dump is aligned to sixteen bytes.
func (mem *Memory) Dump(from uint16, to uint16) string {
	from &= AddressMask &^ 0x0f
	to &= AddressMask

	s := strings.Builder{}
	for a := int(from); a <= int(to); a += 16 {
		s.WriteString(fmt.Sprintf("%03x:", a))
		for b := 0; b < 16; b++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[(a+b)&AddressMask]))
		}
		s.WriteString("\n")
	}
	return s.String()
}
