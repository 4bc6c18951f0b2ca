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
	"sort"
	"strings"

	"github.com/jetsetilly/gopherchip8/curated"
)

// placeholders accepted in a command definition.
const placeholders = "VISF*"

// ParseCommandTemplate turns a template, a list of command definitions,
// into a Commands instance suitable for validation and tab completion.
// The syntax understood by the parser is described in the package
// documentation.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := make(Commands, 0, len(template))

	for _, defn := range template {
		defn = strings.TrimSpace(defn)
		if defn == "" {
			return nil, curated.Errorf("parser: empty command definition")
		}

		scn := &scanner{tokens: scanDefinition(defn)}

		tag, ok := scn.get()
		if !ok || isReserved(tag) {
			return nil, curated.Errorf("parser: malformed command definition (%s)", defn)
		}

		cmd := &node{tag: strings.ToUpper(tag), group: groupRoot}

		seq, err := parseSequence(scn, groupRoot)
		if err != nil {
			return nil, curated.Errorf("parser: %v (%s)", err, defn)
		}
		cmd.next = seq

		if !scn.isEnd() {
			tok, _ := scn.peek()
			return nil, curated.Errorf("parser: unexpected %s (%s)", tok, defn)
		}

		for _, c := range cmds {
			if c.tag == cmd.tag {
				return nil, curated.Errorf("parser: duplicate definition for %s", cmd.tag)
			}
		}

		cmds = append(cmds, cmd)
	}

	sort.Stable(cmds)

	return &cmds, nil
}

// AddHelp adds the help command to the Commands instance. It accepts any
// single string argument; interpreting that argument is left to whoever
// owns the command line.
func (cmds *Commands) AddHelp(helpCommand string) error {
	helpCommand = strings.ToUpper(helpCommand)

	for _, c := range *cmds {
		if c.tag == helpCommand {
			return curated.Errorf("parser: %s command already defined", helpCommand)
		}
	}

	help := &node{tag: helpCommand, group: groupRoot}
	help.next = []*node{{tag: "%S", group: groupOptional}}

	*cmds = append(*cmds, help)
	sort.Stable(*cmds)

	return nil
}

// parseSequence parses consecutive arguments until the end of the
// definition or the end of an enclosing group. the first node of the
// sequence is marked with the supplied group type; that is how group
// membership is recorded in the tree.
func parseSequence(scn *scanner, group groupType) ([]*node, error) {
	nodes := make([]*node, 0)

	for {
		tok, ok := scn.peek()
		if !ok || tok == ")" || tok == "]" || tok == "|" {
			break
		}

		switch tok {
		case "(", "[":
			scn.get()

			grp := groupOptional
			if tok == "[" {
				grp = groupRequired
			}

			head, err := parseGroup(scn, grp)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, head)

		default:
			scn.get()

			tok = strings.ToUpper(tok)
			if err := checkTag(tok); err != nil {
				return nil, err
			}

			g := groupRoot
			if len(nodes) == 0 {
				g = group
			}
			nodes = append(nodes, &node{tag: tok, group: g})
		}
	}

	return nodes, nil
}

// parseGroup parses the alternatives of a group, stopping at the
// matching close bracket.
func parseGroup(scn *scanner, grp groupType) (*node, error) {
	closer := ")"
	if grp == groupRequired {
		closer = "]"
	}

	head, err := parseAlternative(scn, grp)
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := scn.get()
		if !ok {
			return nil, curated.Errorf("unclosed group")
		}

		if tok == closer {
			break
		}

		if tok != "|" {
			return nil, curated.Errorf("unexpected %s in group", tok)
		}

		alt, err := parseAlternative(scn, grp)
		if err != nil {
			return nil, err
		}
		head.branch = append(head.branch, alt)
	}

	return head, nil
}

func parseAlternative(scn *scanner, grp groupType) (*node, error) {
	if tok, ok := scn.peek(); ok && (tok == "(" || tok == "[") {
		return nil, curated.Errorf("a group alternative cannot begin with another group")
	}

	seq, err := parseSequence(scn, grp)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, curated.Errorf("empty group alternative")
	}

	head := seq[0]
	head.next = seq[1:]

	return head, nil
}

func checkTag(tok string) error {
	if strings.HasPrefix(tok, "%") {
		if len(tok) != 2 || !strings.ContainsRune(placeholders, rune(tok[1])) {
			return curated.Errorf("unknown placeholder (%s)", tok)
		}
		return nil
	}
	if strings.Contains(tok, "%") {
		return curated.Errorf("placeholders cannot be embedded (%s)", tok)
	}
	return nil
}

func isReserved(tok string) bool {
	switch tok {
	case "(", ")", "[", "]", "|":
		return true
	}
	return strings.HasPrefix(tok, "%")
}

// scanDefinition divides a command definition into tokens. brackets and
// pipes are tokens in their own right and do not need to be surrounded
// by white space.
func scanDefinition(defn string) []string {
	tokens := make([]string, 0)

	b := strings.Builder{}
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}

	for _, r := range defn {
		switch r {
		case ' ', '\t':
			flush()
		case '(', ')', '[', ']', '|':
			flush()
			tokens = append(tokens, string(r))
		default:
			b.WriteRune(r)
		}
	}
	flush()

	return tokens
}

type scanner struct {
	tokens []string
	pos    int
}

func (scn *scanner) get() (string, bool) {
	if scn.pos >= len(scn.tokens) {
		return "", false
	}
	scn.pos++
	return scn.tokens[scn.pos-1], true
}

func (scn *scanner) peek() (string, bool) {
	if scn.pos >= len(scn.tokens) {
		return "", false
	}
	return scn.tokens[scn.pos], true
}

func (scn *scanner) isEnd() bool {
	return scn.pos >= len(scn.tokens)
}
