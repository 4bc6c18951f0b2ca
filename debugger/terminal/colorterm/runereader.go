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

package colorterm

import (
	"bufio"
	"io"
)

type readRune struct {
	r   rune
	n   int
	err error
}

// runeReader is the result of initRuneReader(). it provides a way of
// receiving runes from (say) os.Stdin, while also being able to select
// on other channels. reading directly from the input source would block
// and prevent the select from working.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	reader := bufio.NewReader(input)
	ch := make(chan readRune)

	go func() {
		for {
			r, n, err := reader.ReadRune()
			ch <- readRune{r, n, err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}
