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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Patterns that callers need to test for should be stored as exported
// const strings next to the code that raises them. For example, the cpu
// package defines:
//
//	const StackOverflow = "cpu: stack overflow (call at %#03x)"
//
// and the caller of the cpu can check for it with:
//
//	if curated.Is(err, cpu.StackOverflow) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Chains are built by using a curated error as a placeholder
// value in another curated error:
//
//	e := curated.Errorf(cpu.StackOverflow, 0x204)
//	f := curated.Errorf("hardware: %v", e)
//
//	curated.Is(f, cpu.StackOverflow)  // false
//	curated.Has(f, cpu.StackOverflow) // true
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". So the message
// for:
//
//	curated.Errorf("memory: %v", curated.Errorf("memory: program too large"))
//
// is "memory: program too large" and not "memory: memory: program too large".
//
// Curated errors also implement Unwrap() so the errors.Is() and errors.As()
// functions in the standard library will find any error used as a placeholder
// value.
package curated
