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

// Package prefs manages preference values. Values are registered with an
// instance of Disk which saves them to and loads them from a file.
//
//	var cps prefs.Int
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("hardware.cpu.cyclesPerSecond", &cps)
//	err = dsk.Load(true)
//
// Preference files consist of one "key :: value" entry per line. A Disk only
// reads and writes the keys that have been added to it. Other entries in the
// file are left alone, so more than one Disk can share the same file.
//
// Values can also be specified on the command line with the
// PushCommandLineStack() function. Command line values take precedence over
// values loaded from disk and are never saved.
package prefs
