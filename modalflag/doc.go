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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first call NewArgs()
// with the array of arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes and
// sub-modes, which we'll come to shortly.
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions. For example, handling
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// These functions return a pointer to a variable of the specified type,
// initialised to the default value. Parse() sets the value according to what
// the user has requested:
//
//	if *verbose {
//		fmt.Println(additionalLogMessage)
//	}
//
// The most important difference to the standard flag package is the handling
// of modes. A mode is a special command line argument that puts the parser
// into a different context, with its own flags and arguments. Modes are
// added with AddSubModes() before parsing:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "disasm")
//	_, _ = md.Parse()
//
// The first mode in the list is the default, selected when the user names no
// mode. After the call to Parse(), the selected mode is available through
// the Mode() function (normalised to upper case):
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "display scaling")
//		p, err := md.Parse()
//		...
//	}
//
// The call to NewMode() puts the parser into the context of the selected
// mode; the second Parse() picks up that mode's flags and arguments. Modes
// can be chained as deep as required, each layer adding its own sub-modes
// with AddSubModes() before its Parse().
package modalflag
