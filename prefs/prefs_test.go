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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(0.5))
	test.ExpectEquality(t, v.String(), "0.500")
	test.ExpectSuccess(t, v.Set("1.25"))
	test.ExpectEquality(t, v.Get().(float64), 1.25)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get().(float64), 2.0)
	test.ExpectFailure(t, v.Set("abc"))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(float64), 0.0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative value")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, post, 100)

	// pre hook prevents the new value being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, post, 100)
}

func TestLoad(t *testing.T) {
	fn := prefsFile(t)

	data := fmt.Sprintf("%s\nfoo :: 20\nbar :: true\nother :: something\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var foo prefs.Int
	var bar prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &foo))
	test.ExpectSuccess(t, dsk.Add("bar", &bar))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, foo.Get().(int), 20)
	test.ExpectEquality(t, bar.Get().(bool), true)

	// the entry not belonging to this disk survives a save
	test.ExpectSuccess(t, foo.Set(30))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "bar :: true\nfoo :: 30\nother :: something\n")
}

func TestMissingFile(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(5))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// saveOnFail creates the file
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefsFile(t, fn, "number :: 5\n")
}

func TestInvalidKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(prefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a b", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::b", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, dsk.Add("a.b", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a.b", &v), prefs.DuplicateKey))
}

func TestCommandLineOverride(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("hardware.cpu.cyclesPerSecond", &v))
	test.ExpectSuccess(t, v.Set(600))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("hardware.cpu.cyclesPerSecond::1000; unused::1")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 1000)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
}
