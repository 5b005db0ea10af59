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

// Package plainterm implements the Terminal interface with no line editing.
// The terminal is left in whatever mode it started, probably cooked mode.
package plainterm

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/hakka/hakka/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the most basic terminal implementation.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer

	// the prompt is only printed and colours only used when the input and
	// output are real terminals
	realInput  bool
	realOutput bool

	reader *bufio.Reader

	// TermPrintLine() can be called while TermRead() is waiting
	crit sync.Mutex
}

// NewPlainTerminal creates a PlainTerminal reading from input and writing to
// output. Nil values mean os.Stdin and os.Stdout.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

func isTerminal(v interface{}) bool {
	if f, ok := v.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = os.Stdin
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}
	pt.realInput = isTerminal(pt.input)
	pt.realOutput = isTerminal(pt.output)
	pt.reader = bufio.NewReader(pt.input)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Terminal interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// TermPrintLine implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, text string) {
	// the terminal echoes input itself
	if style == terminal.StyleEcho {
		return
	}

	if pt.realOutput {
		switch style {
		case terminal.StyleError:
			text = color.Red.Sprint(text)
		case terminal.StyleFeedback:
			text = color.Gray.Sprint(text)
		}
	}

	pt.crit.Lock()
	defer pt.crit.Unlock()
	io.WriteString(pt.output, text+"\n")
}

// TermRead implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.realInput {
		pt.crit.Lock()
		io.WriteString(pt.output, prompt)
		pt.crit.Unlock()
	}

	s, err := pt.reader.ReadString('\n')
	if err != nil {
		// a final line without a line ending is still a line
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}
