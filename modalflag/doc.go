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

// Package modalflag wraps the flag package from the standard library and adds
// the notion of program modes. Each mode has its own set of flags.
//
// Arguments are handed over with NewArgs() and then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM", "PERFORMANCE")
//	p, err := md.Parse()
//
// The first argument after the flags is compared against the list of
// sub-modes. If it matches, the mode is selected and removed from the
// remaining arguments. If it doesn't match then the first sub-mode in the list
// is selected. Comparison is case insensitive.
//
// Once a mode has been chosen, NewMode() begins a new layer of flags and
// sub-modes which is parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "pixel scaling")
//		p, err := md.Parse()
//		...
//	}
//
// Help requests (-help or -h) are handled by Parse() and are indicated by the
// ParseHelp result.
package modalflag
