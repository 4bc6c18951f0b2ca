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
	"testing"

	"github.com/jetsetilly/gopherchip8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherchip8/test"
)

func parseTestTemplate(t *testing.T) *commandline.Commands {
	t.Helper()

	template := []string{
		"BREAK [LIST|CLEAR|%V]",
		"DISASM (%V (%V))",
		"FREQ (%I)",
		"KEY [%V] (UP)",
		"POKE [%V %V]",
		"RUN",
		"STEP (OVER)",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if !test.ExpectedSuccess(t, err) {
		t.Fatalf("cannot parse test template")
	}

	return cmds
}

func TestValidation_noArguments(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("RUN"))
	test.ExpectedSuccess(t, cmds.Validate("run"))

	// empty input validates trivially
	test.ExpectedSuccess(t, cmds.Validate(""))

	// too many arguments
	test.ExpectedFailure(t, cmds.Validate("RUN NOW"))

	// unrecognised command
	test.ExpectedFailure(t, cmds.Validate("WIBBLE"))
}

func TestValidation_optionalKeyword(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("STEP"))
	test.ExpectedSuccess(t, cmds.Validate("STEP OVER"))
	test.ExpectedSuccess(t, cmds.Validate("step over"))
	test.ExpectedFailure(t, cmds.Validate("STEP SIDEWAYS"))
}

func TestValidation_requiredBranches(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("BREAK LIST"))
	test.ExpectedSuccess(t, cmds.Validate("BREAK CLEAR"))
	test.ExpectedSuccess(t, cmds.Validate("BREAK 512"))
	test.ExpectedSuccess(t, cmds.Validate("BREAK 0x200"))
	test.ExpectedSuccess(t, cmds.Validate("BREAK $200"))

	// the argument is required
	test.ExpectedFailure(t, cmds.Validate("BREAK"))

	// and must match one of the alternatives
	test.ExpectedFailure(t, cmds.Validate("BREAK SOMEWHERE"))
}

func TestValidation_numericArguments(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("POKE 0x300 0xff"))
	test.ExpectedSuccess(t, cmds.Validate("POKE $300 255"))

	// both arguments are required
	test.ExpectedFailure(t, cmds.Validate("POKE"))
	test.ExpectedFailure(t, cmds.Validate("POKE 0x300"))

	// and must be numeric
	test.ExpectedFailure(t, cmds.Validate("POKE 0x300 UP"))
	test.ExpectedFailure(t, cmds.Validate("POKE THERE 0xff"))
}

func TestValidation_nestedOptional(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("DISASM"))
	test.ExpectedSuccess(t, cmds.Validate("DISASM 0x200"))
	test.ExpectedSuccess(t, cmds.Validate("DISASM 0x200 0x300"))

	test.ExpectedFailure(t, cmds.Validate("DISASM 0x200 0x300 0x400"))
	test.ExpectedFailure(t, cmds.Validate("DISASM BADADDR"))
}

func TestValidation_mixedArguments(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("KEY 5"))
	test.ExpectedSuccess(t, cmds.Validate("KEY 0xa UP"))
	test.ExpectedFailure(t, cmds.Validate("KEY"))
	test.ExpectedFailure(t, cmds.Validate("KEY UP"))
	test.ExpectedFailure(t, cmds.Validate("KEY 5 DOWN"))
}

func TestValidation_floatArguments(t *testing.T) {
	cmds := parseTestTemplate(t)

	test.ExpectedSuccess(t, cmds.Validate("FREQ"))
	test.ExpectedSuccess(t, cmds.Validate("FREQ 600"))
	test.ExpectedSuccess(t, cmds.Validate("FREQ 0.5"))
	test.ExpectedFailure(t, cmds.Validate("FREQ FAST"))
}
