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
	"strings"
)

// Commands is the root of the command tree. each entry is the first node
// of a command definition.
type Commands []*node

// Len implements the sort package interface.
func (cmds Commands) Len() int {
	return len(cmds)
}

// Less implements the sort package interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds[i].tag < cmds[j].tag
}

// Swap implements the sort package interface.
func (cmds Commands) Swap(i int, j int) {
	cmds[i], cmds[j] = cmds[j], cmds[i]
}

// String returns the definitions of all commands, one per line, in
// alphabetical order.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for c := range cmds {
		s.WriteString(cmds[c].String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

type groupType int

const (
	groupUndefined groupType = iota

	// nodes in the root of a command definition, and nodes that follow a
	// group head within an alternative. treated as required during
	// validation
	groupRoot

	groupRequired
	groupOptional
)

// a node is a single element of a command definition: a keyword or a
// placeholder.
//
// nodes are chained together through the next and branch arrays. next is
// the sequence of nodes that follow this one. a group is recorded as the
// head node of its first alternative, marked with the group type, with
// the heads of the remaining alternatives hanging off the branch array.
type node struct {
	// tag is always non-empty. either a keyword or a %-prefixed
	// placeholder
	tag string

	group groupType

	next   []*node
	branch []*node
}

func (n node) String() string {
	s := strings.Builder{}

	s.WriteString(n.tag)

	for i := range n.next {
		switch n.next[i].group {
		case groupRequired:
			s.WriteString(" [")
		case groupOptional:
			s.WriteString(" (")
		default:
			s.WriteString(" ")
		}

		s.WriteString(n.next[i].String())

		switch n.next[i].group {
		case groupRequired:
			s.WriteString("]")
		case groupOptional:
			s.WriteString(")")
		}
	}

	for i := range n.branch {
		s.WriteString("|")
		s.WriteString(n.branch[i].String())
	}

	return s.String()
}
