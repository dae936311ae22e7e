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

// Package termplay implements the gui.GUI interface for ANSI terminals. Two
// rows of the display are drawn on each line of the terminal with half block
// characters.
//
// Input is read from the controlling terminal in raw mode. Terminals report
// key presses but not key releases, so a key is held down for a fixed number
// of frames after it is pressed. Pressing the key again during that time
// extends the hold.
package termplay
