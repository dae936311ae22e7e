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

// Package paths contains functions to prepare paths to gopher8 resources.
//
// The ResourcePath() function returns the supplied resource path prepended
// with the base resource directory. For example, the path to the preferences
// file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base resource directory is ".gopher8" in the
// current working directory. Release builds (built with the "release" tag)
// use the gopher8 directory inside the user's config directory, as returned
// by os.UserConfigDir(). In both cases the directory is created if it does not
// already exist.
package paths
