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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// StackDepth is the number of return addresses the stack can hold.
const StackDepth = 16

// Error patterns for the stack.
const (
	StackOverflow  = "cpu: stack overflow (depth %d)"
	StackUnderflow = "cpu: stack underflow"
)

// Stack of return addresses. The stack pointer indicates the next free slot.
type Stack struct {
	slots [StackDepth]uint16
	sp    uint8
}

func (stk *Stack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d", stk.sp))
	for i := 0; i < int(stk.sp); i++ {
		s.WriteString(fmt.Sprintf(" %#03x", stk.slots[i]))
	}
	return s.String()
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	stk.slots = [StackDepth]uint16{}
	stk.sp = 0
}

// Depth returns the number of addresses on the stack.
func (stk *Stack) Depth() int {
	return int(stk.sp)
}

// Push address onto the stack. The stack is unchanged if it is full.
func (stk *Stack) Push(address uint16) error {
	if stk.sp >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	stk.slots[stk.sp] = address
	stk.sp++
	return nil
}

// Pop address from the stack. The stack is unchanged if it is empty.
func (stk *Stack) Pop() (uint16, error) {
	if stk.sp == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.sp--
	return stk.slots[stk.sp], nil
}
