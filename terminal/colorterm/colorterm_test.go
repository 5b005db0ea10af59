// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/terminal"
	"github.com/hakka/hakka/test"
)

func newTestTerminal(input string) (*ColorTerminal, *test.Writer) {
	tw := &test.Writer{}
	ct := NewColorTerminal()
	ct.output = tw
	ct.reader = bufio.NewReader(strings.NewReader(input))
	return ct, tw
}

func TestEditing(t *testing.T) {
	ct, _ := newTestTerminal("memst\x1b[De\x1b[F 0 1\r")
	s, err := ct.readLine(terminal.Prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "memset 0 1")

	ct, _ = newTestTerminal("abc\x7f\x7fx\x01y\x1b[3~\r")
	s, err = ct.readLine(terminal.Prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "yx")
}

func TestHistory(t *testing.T) {
	ct, _ := newTestTerminal("one\rtwo\r\x1b[A\x1b[A\r\x1b[A\x1b[B\x1b[B\r")

	for _, exp := range []string{"one", "two", "one", ""} {
		s, err := ct.readLine(terminal.Prompt)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, exp)
	}
}

func TestInterrupt(t *testing.T) {
	ct, tw := newTestTerminal("abc\x03def\r\x04")

	_, err := ct.readLine(terminal.Prompt)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "^C\r\n"))

	s, err := ct.readLine(terminal.Prompt)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "def")

	_, err = ct.readLine(terminal.Prompt)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	_, err = ct.readLine(terminal.Prompt)
	test.ExpectEquality(t, err, io.EOF)
}

func TestPrintDuringRead(t *testing.T) {
	ct, tw := newTestTerminal("")

	// no read in progress
	ct.TermPrintLine(terminal.StyleNormal, "hello")
	test.ExpectEquality(t, tw.String(), "hello\n")
	tw.Clear()

	ct.prompt = terminal.Prompt
	ct.input.Insert("ab")
	ct.TermPrintLine(terminal.StyleNormal, "monitor")
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "\r"+ansiClearLine+"monitor\r\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "ab"))
}
