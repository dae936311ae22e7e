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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Histogram counts executed instructions by category.
type Histogram struct {
	counts [instructions.NumCategories]uint64
	total  uint64
}

// Add the instruction from the execution result to the histogram. Key waits
// are counted because they take a cycle like any other instruction.
func (h *Histogram) Add(r execution.Result) {
	h.counts[r.Instruction.Operator.Category()]++
	h.total++
}

// Count returns the number of instructions counted for the category.
func (h *Histogram) Count(c instructions.Category) uint64 {
	return h.counts[c]
}

// Total returns the number of instructions counted.
func (h *Histogram) Total() uint64 {
	return h.total
}

// String returns one line per category that has a non-zero count.
func (h *Histogram) String() string {
	s := strings.Builder{}
	for c, n := range h.counts {
		if n == 0 {
			continue
		}
		s.WriteString(fmt.Sprintf("  %-10s %6.2f%%\n", instructions.Category(c), 100*float64(n)/float64(h.total)))
	}
	return s.String()
}

// CalcRate takes the number of cycles and duration (in seconds) and returns
// the cycles-per-second and the accuracy of that value, as a percentage of the
// configured rate.
func CalcRate(cycles uint64, duration float64, cyclesPerSecond int) (rate float64, accuracy float64) {
	rate = float64(cycles) / duration
	accuracy = 100 * rate / float64(cyclesPerSecond)
	return rate, accuracy
}
