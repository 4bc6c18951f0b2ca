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

// TabCompletion implements the terminal.TabCompletion interface on top
// of a Commands instance. The first word of the input is completed
// against command names; subsequent words against the keywords in the
// matched command's definition.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int

	// the input up to the word being completed
	stem string

	// the string most recently returned by Complete(). if the next call
	// supplies exactly this string then we cycle to the next candidate
	// rather than rebuilding the candidate list
	lastCompletion string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input so that the last word is replaced with
// the next available completion candidate. Repeated calls, each passing
// the result of the previous call, cycle through the candidates.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
		tc.lastCompletion = tc.stem + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return input
	}

	// a partial word is only being completed if the input doesn't end
	// with a space. otherwise a fresh word is being suggested
	partial := ""
	if !strings.HasSuffix(input, " ") {
		partial = tokens[len(tokens)-1]
	}
	tc.stem = strings.TrimSuffix(input, partial)

	var candidates []string
	if len(tokens) == 1 && partial != "" {
		candidates = tc.commandCandidates()
	} else {
		candidates = tc.argumentCandidates(strings.ToUpper(tokens[0]))
	}

	prefix := strings.ToUpper(partial)
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.match = 0
	tc.lastCompletion = tc.stem + tc.matches[0] + " "
	return tc.lastCompletion
}

// Reset forgets the current completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.stem = ""
	tc.lastCompletion = ""
}

func (tc *TabCompletion) commandCandidates() []string {
	candidates := make([]string, 0, len(*tc.cmds))
	for _, n := range *tc.cmds {
		candidates = append(candidates, n.tag)
	}
	return candidates
}

// argumentCandidates flattens the keywords in the command's definition.
// placeholders are of no use for completion and are ignored.
func (tc *TabCompletion) argumentCandidates(command string) []string {
	for _, n := range *tc.cmds {
		if n.tag == command {
			candidates := make([]string, 0)
			for _, c := range n.next {
				candidates = gatherKeywords(candidates, c)
			}
			return candidates
		}
	}
	return nil
}

func gatherKeywords(candidates []string, n *node) []string {
	if !strings.HasPrefix(n.tag, "%") {
		candidates = append(candidates, n.tag)
	}
	for _, b := range n.branch {
		candidates = gatherKeywords(candidates, b)
	}
	for _, nx := range n.next {
		candidates = gatherKeywords(candidates, nx)
	}
	return candidates
}
