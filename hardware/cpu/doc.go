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

// Package cpu implements the fetch-decode-execute cycle of the interpreter.
//
// The CPU does not own the memory, display, keypad or timers. It accesses
// them through the interfaces defined in this package, which makes it
// possible to test the CPU in isolation.
//
// Each call to ExecuteInstruction() executes exactly one instruction. The
// result of the cycle is recorded in the LastResult field.
//
// The stack is the only part of the CPU that can fail. On a stack overflow or
// underflow the cycle is rolled back, leaving the program counter pointing at
// the offending instruction, and the error is returned.
package cpu
