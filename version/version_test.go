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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/test"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()

	// test binaries are never numbered releases
	test.ExpectFailure(t, release)
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")

	test.ExpectEquality(t, version.Title(), version.ApplicationName)
	test.ExpectSuccess(t, strings.HasPrefix(version.Summary(), "Gopher8 "))
}
