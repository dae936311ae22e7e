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

// Package logger is the central log repository for Gopher8. Log entries are
// made with the Log() and Logf() functions. Each entry has a tag and a detail:
//
//	logger.Logf(logger.Allow, "cpu", "unrecognised opcode %04x at %03x", word, pc)
//
// Repeated entries with the same tag and detail are collapsed into a single
// entry with a repeat count. The number of entries kept is capped.
//
// Every log request carries a Permission. The Allow permission is a good
// default. Other implementations of Permission can be used to suppress
// logging, for example when running the emulation as fast as possible in the
// PERFORMANCE mode.
//
// The contents of the log can be written to an io.Writer with Write() or
// Tail(). SetEcho() causes new entries to be written to an io.Writer as they
// are made.
//
// Separate instances of the logger can be created with NewLogger(). This is
// mostly useful for testing.
package logger
