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

// Package playmode is the driver loop for the interpreter. The loop runs at the
// timer frequency preference. Each frame services the GUI, translates GUI
// events into keypad changes, executes the number of instructions that keeps
// the interpreter at the cycles per second preference and then presents the
// display.
//
// The Escape key (or closing the window) quits and the F2 key resets the
// interpreter, reinserting the attached ROM.
package playmode
