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

package commandline_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherchip8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherchip8/test"
)

// expectEquality compares a template, as passed to ParseCommandTemplate(),
// with the String() output of the resulting Commands object. the two
// should be the same, once the template has been sorted and upper-cased.
func expectEquality(t *testing.T, template []string, cmds *commandline.Commands) bool {
	t.Helper()

	sorted := make([]string, len(template))
	for i := range template {
		sorted[i] = strings.ToUpper(strings.TrimSpace(template[i]))
	}
	sort.Strings(sorted)

	if strings.Join(sorted, "\n") != cmds.String() {
		t.Errorf("parsed commands do not match template")
		return false
	}
	return true
}

// it is not always possible to recreate the original template from the
// parsed nodes; the parsed form is effectively an optimised version. in
// those cases we check that the String() output parses to itself.
func expectEquivalency(t *testing.T, cmds *commandline.Commands) bool {
	t.Helper()

	template := strings.Split(cmds.String(), "\n")
	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		return expectEquality(t, template, cmds)
	}

	return false
}

func TestParser_simple(t *testing.T) {
	template := []string{
		"RUN",
		"HALT",
		"STEP (OVER)",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		expectEquality(t, template, cmds)
	}
}

func TestParser_caseNormalisation(t *testing.T) {
	template := []string{"step (over)"}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		test.Equate(t, cmds.String(), "STEP (OVER)")
	}
}

func TestParser_branches(t *testing.T) {
	template := []string{"BREAK [LIST|CLEAR|%V]"}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		expectEquality(t, template, cmds)
	}

	template = []string{"TEST (EGG|FOG|NUG NOG|BIG) (TUG)"}

	cmds, err = commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		expectEquality(t, template, cmds)
	}
}

func TestParser_nestedGroups(t *testing.T) {
	template := []string{
		"DISASM (%V (%V))",
		"TEST (FOO|BAR (BAZ))",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		expectEquality(t, template, cmds)
	}
}

func TestParser_placeholders(t *testing.T) {
	template := []string{
		"POKE [%V %V]",
		"MEMVIZ (%F)",
		"FREQ (%I)",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		expectEquality(t, template, cmds)
	}

	// placeholder directives must be complete
	_, err = commandline.ParseCommandTemplate([]string{"TEST FOO %"})
	test.ExpectedFailure(t, err)

	// placeholder directives must be recognised
	_, err = commandline.ParseCommandTemplate([]string{"TEST FOO %Q"})
	test.ExpectedFailure(t, err)

	// placeholder directives must be separated from surrounding text
	_, err = commandline.ParseCommandTemplate([]string{"TEST FOO%V"})
	test.ExpectedFailure(t, err)
}

func TestParser_badGroupings(t *testing.T) {
	// groups must be closed
	_, err := commandline.ParseCommandTemplate([]string{"TEST (ARG"})
	test.ExpectedFailure(t, err)

	// group brackets must match
	_, err = commandline.ParseCommandTemplate([]string{"TEST (ARG]"})
	test.ExpectedFailure(t, err)

	// groups cannot be empty
	_, err = commandline.ParseCommandTemplate([]string{"TEST ()"})
	test.ExpectedFailure(t, err)

	// an alternative cannot begin with a group
	_, err = commandline.ParseCommandTemplate([]string{"TEST ((FOO)|BAR)"})
	test.ExpectedFailure(t, err)
}

func TestParser_duplicates(t *testing.T) {
	_, err := commandline.ParseCommandTemplate([]string{"TEST", "TEST [%V]"})
	test.ExpectedFailure(t, err)
}

func TestParser_equivalency(t *testing.T) {
	template := []string{
		"KEY [%V] (UP)",
		"MEMORY (%V (%V))",
		"LOG (CLEAR)",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectedSuccess(t, err) {
		expectEquivalency(t, cmds)
	}
}

func TestParser_addHelp(t *testing.T) {
	template := []string{
		"BREAK [LIST|CLEAR|%V]",
		"STEP (OVER)",
		"QUIT",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	err = cmds.AddHelp("HELP")
	test.ExpectedSuccess(t, err)

	// the help command validates like any other
	test.ExpectedSuccess(t, cmds.Validate("HELP"))
	test.ExpectedSuccess(t, cmds.Validate("HELP STEP"))

	// adding a second HELP command is not allowed
	err = cmds.AddHelp("HELP")
	test.ExpectedFailure(t, err)
}
