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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Profile specifies which profiling (if any) should be performed.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileAll = ProfileCPU | ProfileMem
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCPU:
		return "cpu"
	case ProfileMem:
		return "mem"
	case ProfileAll:
		return "all"
	}
	return fmt.Sprintf("%d", int(p))
}

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are "none", "cpu", "mem" and "all".
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile type (%s)", n))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the requested profiling
// active. Profile files are named with the filenameHeader as a prefix. For
// example: "performance_cpu.profile".
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		if err := memProfile(fmt.Sprintf("%s_mem.profile", filenameHeader)); err != nil {
			return err
		}
	}

	return err
}

func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}
