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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most useful
// functions in the package. They compare values of any comparable type:
//
//	test.ExpectEquality(t, mc.PC.Address(), uint16(0x202))
//
// The ExpectSuccess() and ExpectFailure() functions test for values that
// indicate success or failure. A bool value of true is a success, as is a nil
// error value.
//
// The Demand*() variants of these functions stop the test immediately with
// t.Fatalf() rather than t.Errorf().
//
// An optional list of tags can be supplied to all functions. The tags are
// prepended to any failure message and are useful for identifying which
// iteration of a loop caused the failure.
package test
