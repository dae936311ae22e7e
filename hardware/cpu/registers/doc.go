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

// Package registers implements the registers of the interpreter.
//
// Register is an 8-bit register, used for the sixteen general purpose
// registers V0 to VF. The arithmetic functions return the flag value that the
// instruction should place in VF. The register does not write the flag
// itself.
//
// ProgramCounter is a 16-bit register, used for both the program counter and
// the index register I.
package registers
