// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions that remove common boilerplate from
// tests elsewhere in the project.
//
// The ExpectedFailure() and ExpectedSuccess() functions test for failure and
// success under generic conditions. The documentation for those functions
// describes the currently supported types.
//
// How the "Expected" functions handle the nil type deserves a note because it
// is not obvious. The nil type is considered a success, so nil will cause
// ExpectedFailure() to fail and ExpectedSuccess() to succeed. That is not
// necessarily how nil should be read in every context but it is consistent
// with how the error convention works (nil meaning no error), and the error
// convention is the overwhelmingly common case.
//
// The Equate() function compares like-typed values for equality. Some types
// (eg. uint16) can be compared against an int literal for convenience. See
// the Equate() documentation for the reasons why.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output. The Writer.Compare() function tests the captured output
// for equality against a reference string.
package test
