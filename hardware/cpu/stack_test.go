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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/test"
)

func TestStack(t *testing.T) {
	var stk cpu.Stack

	_, err := stk.Pop()
	test.ExpectSuccess(t, curated.Is(err, cpu.StackUnderflow))

	for i := 0; i < cpu.StackDepth; i++ {
		test.ExpectSuccess(t, stk.Push(uint16(0x200+i*2)))
	}
	test.ExpectEquality(t, stk.Depth(), cpu.StackDepth)

	err = stk.Push(0x300)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackOverflow))
	test.ExpectEquality(t, err.Error(), "cpu: stack overflow (depth 16)")
	test.ExpectEquality(t, stk.Depth(), cpu.StackDepth)

	// last in first out
	for i := cpu.StackDepth - 1; i >= 0; i-- {
		a, err := stk.Pop()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, a, uint16(0x200+i*2))
	}
	test.ExpectEquality(t, stk.Depth(), 0)

	test.ExpectSuccess(t, stk.Push(0x400))
	test.ExpectEquality(t, stk.String(), "SP=1 0x400")
	stk.Reset()
	test.ExpectEquality(t, stk.String(), "SP=0")
}
