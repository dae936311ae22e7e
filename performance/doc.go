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

// Package performance measures the speed of the interpreter. The Check()
// function runs the attached ROM without a GUI for a fixed duration and
// reports the number of instructions executed per second, both as an absolute
// value and as a percentage of the cycles per second preference. A histogram
// of the instruction categories is also reported.
//
// Check() can run the interpreter under the CPU profiler or write a heap
// profile at the end of the run. The state of the interpreter at the end of
// the run can also be written as a graphviz file with memviz.
package performance
