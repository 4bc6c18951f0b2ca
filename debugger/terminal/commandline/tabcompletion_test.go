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

func TestTabCompletion_commands(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"SCREEN",
		"SCRIPT [%F]",
		"STEP (OVER)",
		"RUN",
	})
	if !test.ExpectedSuccess(t, err) {
		return
	}

	tc := commandline.NewTabCompletion(cmds)

	// completion of a unique prefix
	test.Equate(t, tc.Complete("R"), "RUN ")

	// repeated completion cycles through the candidates in alphabetical
	// order, wrapping around at the end
	tc.Reset()
	test.Equate(t, tc.Complete("S"), "SCREEN ")
	test.Equate(t, tc.Complete("SCREEN "), "SCRIPT ")
	test.Equate(t, tc.Complete("SCRIPT "), "STEP ")
	test.Equate(t, tc.Complete("STEP "), "SCREEN ")
}

func TestTabCompletion_arguments(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"BREAK [LIST|CLEAR|%V]",
		"STEP (OVER)",
	})
	if !test.ExpectedSuccess(t, err) {
		return
	}

	tc := commandline.NewTabCompletion(cmds)

	// keyword arguments complete; placeholders are ignored
	test.Equate(t, tc.Complete("STEP O"), "STEP OVER ")

	tc.Reset()
	test.Equate(t, tc.Complete("BREAK C"), "BREAK CLEAR ")

	// a trailing space asks for a fresh word
	tc.Reset()
	test.Equate(t, tc.Complete("STEP "), "STEP OVER ")

	// lower case input completes too
	tc.Reset()
	test.Equate(t, tc.Complete("break li"), "break LIST ")
}

func TestTabCompletion_noMatch(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"STEP (OVER)",
	})
	if !test.ExpectedSuccess(t, err) {
		return
	}

	tc := commandline.NewTabCompletion(cmds)

	// input with no candidates is returned unchanged
	test.Equate(t, tc.Complete("STEP X"), "STEP X")
	tc.Reset()
	test.Equate(t, tc.Complete("WOBBLE"), "WOBBLE")
	tc.Reset()
	test.Equate(t, tc.Complete(""), "")
}
