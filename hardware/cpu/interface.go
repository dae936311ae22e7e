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

package cpu

// Memory defines the memory operations required by the CPU. Implementations
// should mask the address to the size of memory.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Display defines the display operations required by the CPU.
type Display interface {
	Clear()
	DrawSprite(x uint8, y uint8, sprite []uint8) bool
}

// Keypad defines the keypad operations required by the CPU.
type Keypad interface {
	IsPressed(key uint8) (bool, error)
	LowestPressed() (uint8, bool)
}

// Timers defines the timer operations required by the CPU.
type Timers interface {
	Delay() uint8
	SetDelay(v uint8)
	SetSound(v uint8)
}

// Random defines the random number source required by the CPU.
type Random interface {
	Byte() uint8
}
