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

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherchip8/test"
)

func TestWriter(t *testing.T) {
	tw := &test.Writer{}

	fmt.Fprintf(tw, "hello")
	if !tw.Compare("hello") {
		t.Error("comparison failed after first write")
	}

	fmt.Fprintf(tw, ", world")
	if !tw.Compare("hello, world") {
		t.Error("comparison failed after second write")
	}
	if !tw.Contains("lo, wo") {
		t.Error("expected fragment not found")
	}

	tw.Clear()
	if !tw.Compare("") {
		t.Error("comparison failed after Clear()")
	}
}
