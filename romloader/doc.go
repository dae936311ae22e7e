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

// Package romloader loads program data for the interpreter. The program can
// be a file on the local filesystem or a http/https URL.
//
//	ld := romloader.NewLoader("roms/pong.ch8")
//	err := ld.Load()
//
// Once loaded, the Data field holds the program and the Hash field holds the
// SHA-1 hash of the data. A program has no header so there is nothing to
// check for consistency except the size, which is done when the program is
// attached to the interpreter.
package romloader
