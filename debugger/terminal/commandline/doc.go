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

// Package commandline facilitates parsing of command line input. The
// debugger, and anything else that needs a command line, defines its
// commands with a template; the template is parsed into a Commands
// instance which can then be used to validate user input and to drive
// tab completion.
//
// A template is a list of command definitions. Each definition begins
// with the command keyword, followed by its arguments:
//
//	STEP (OVER)
//	POKE [%V %V]
//
// Square brackets are a required group, round brackets an optional
// group. Alternatives within a group are separated by the pipe
// character:
//
//	BREAK [LIST|CLEAR|%V]
//
// Groups can be nested inside the argument sequence of another group,
// although an alternative cannot itself begin with a group:
//
//	DISASM (%V (%V))
//
// Placeholders stand in for user-supplied values:
//
//	%V	a number (decimal, or hexadecimal with a 0x or $ prefix)
//	%I	a floating point number
//	%S	an arbitrary string
//	%F	a filename
//	%*	the remainder of the input, unparsed
//
// Keywords are case insensitive in user input. The template itself is
// normalised to upper case during parsing.
package commandline
