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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result of the most recent cycle.
type Result struct {
	// address of the instruction
	Address uint16

	Instruction instructions.Instruction

	// the instruction word did not decode to a known operator
	Unrecognised bool

	// the cycle was a key wait. the program counter has been wound back to
	// the same instruction
	KeyWait bool

	// a skip instruction skipped the next instruction
	Skipped bool

	// the cycle completed. a cycle that was rolled back because of an error is
	// not final
	Final bool
}

// Reset the result so that it can be used for a new cycle.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#03x: %04x %s", r.Address, r.Instruction.Word, r.Instruction))
	if r.Skipped {
		s.WriteString(" [skip]")
	}
	if r.KeyWait {
		s.WriteString(" [key wait]")
	}
	if !r.Final {
		s.WriteString(" [not final]")
	}
	return s.String()
}
