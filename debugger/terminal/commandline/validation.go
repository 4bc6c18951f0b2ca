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

package commandline

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherchip8/curated"
)

// Validate input string against the command definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens is like Validate but works on tokens rather than an
// input string. The token traversal is reset before validation begins.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	tokens.Reset()

	cmd, ok := tokens.Peek()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	for n := range cmds {
		if cmd == cmds[n].tag {
			err := cmds[n].validate(tokens)
			if err != nil {
				return curated.Errorf("%v for %s", err, cmd)
			}

			if tokens.Remaining() > 0 {
				return curated.Errorf("too many arguments for %s", cmd)
			}

			return nil
		}
	}

	return curated.Errorf("unrecognised command (%s)", cmd)
}

// branches creates a readable string, listing the alternatives of the
// group headed by the node.
func branches(n *node) string {
	s := strings.Builder{}
	s.WriteString(n.tag)
	for bi := range n.branch {
		s.WriteString(", ")
		s.WriteString(n.branch[bi].tag)
	}
	return s.String()
}

func (n *node) validate(tokens *Tokens) error {
	tok, ok := tokens.Get()

	// if there is no more input then validation passes if the node is
	// optional and fails if it is required. arguments in the root group
	// are treated as required, with the exception of the %* placeholder
	if !ok {
		if n.group == groupRequired || (n.group == groupRoot && n.tag != "%*") {
			switch n.tag {
			case "%*":
				return curated.Errorf("missing required arguments")
			case "%S":
				return curated.Errorf("missing string argument")
			case "%V":
				return curated.Errorf("missing numeric argument")
			case "%I":
				return curated.Errorf("missing floating point argument")
			case "%F":
				return curated.Errorf("missing filename argument")
			}
			return curated.Errorf("missing a required argument (%s)", branches(n))
		}

		return nil
	}

	// check to see if input matches this node, using placeholder
	// matching where appropriate

	match := true

	// default error in case nothing matches. replaced as necessary
	err := curated.Errorf("unrecognised argument (%s)", tok)

	switch n.tag {
	case "%V":
		_, e := strconv.ParseInt(tok, 0, 32)
		if e != nil {
			err = curated.Errorf("numeric argument required (%s is not a number)", tok)
			match = false
		}

	case "%I":
		_, e := strconv.ParseFloat(tok, 32)
		if e != nil {
			err = curated.Errorf("floating point argument required (%s is not a number)", tok)
			match = false
		}

	case "%S":
		// accept anything

	case "%F":
		// accept anything. a filename is distinct from %S only for tab
		// completion purposes

	case "%*":
		// consume the remaining tokens without a care
		for ok {
			_, ok = tokens.Get()
		}
		return nil

	default:
		// case insensitive keyword matching
		match = strings.ToUpper(tok) == n.tag
	}

	// if the input doesn't match this node, check the branches
	if !match {
		if n.branch != nil {
			for bi := range n.branch {
				// recursing into the validate function means the branch
				// needs to see the same token as above. Unget() prepares
				// the tokens object for that
				tokens.Unget()

				if n.branch[bi].validate(tokens) == nil {
					match = true
					break
				}
			}

			// if nothing matched in any of the branches and this is an
			// optional group then treat the group as though it was not
			// present, pushing the token back for any following nodes.
			// a required group with no match is an error
			if !match {
				if n.group == groupOptional {
					tokens.Unget()
				} else {
					return err
				}
			}

			return nil
		}

		return err
	}

	// the input matches this node. check the nodes that follow on
	for ni := range n.next {
		err := n.next[ni].validate(tokens)
		if err != nil {
			return err
		}
	}

	return nil
}
