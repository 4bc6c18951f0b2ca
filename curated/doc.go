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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern. The pattern is what differentiates curated errors from
// one another:
//
//	e := curated.Errorf("machine: bad address: %#04x", addr)
//
//	if curated.Is(e, "machine: bad address: %#04x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, not just at the head:
//
//	f := curated.Errorf("debugger: %v", e)
//
//	curated.Is(f, "machine: bad address: %#04x")   -> false
//	curated.Has(f, "machine: bad address: %#04x")  -> true
//
// The IsAny() function answers whether an error is curated at all. A useful
// way of thinking about the distinction is 'expected' versus 'unexpected':
// errors this project creates itself are curated and can be interpreted,
// while errors arriving from outside (the standard library, a third-party
// package) are not and should be handled as unexpected.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors
// as they percolate up the call stack. Wrapping at every level of a deep
// stack with the same pattern:
//
//	return curated.Errorf("debugger: %v", err)
//
// results in the message:
//
//	debugger: not yet implemented
//
// and not:
//
//	debugger: debugger: not yet implemented
package curated
