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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that should not collide with any existing
// file. The function does not check that this is so.
//
// Used to generate filenames for profiling and memory visualisation output.
//
// Format of returned string is:
//
//	prepend_romname_YYYYMMDD_HHMMSS
//
// If romname is empty the format is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, romname string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	if r := strings.TrimSpace(romname); r != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, r, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
