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

package terminal

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/logger"
)

// Prompt printed in front of terminal input.
const Prompt = "HAKKA> "

// Sentinal errors returned by TermRead().
const (
	UserInterrupt = "terminal: user interrupt"
	UserAbort     = "terminal: user abort"
)

// Style of printed text. Not all implementations differentiate between
// styles.
type Style int

// List of valid Style values.
const (
	StyleNormal Style = iota
	StyleError
	StyleEcho
	StyleFeedback
)

// Terminal defines the operations required of a command line terminal.
type Terminal interface {
	// Initialise the terminal. not all terminal implementations will need to
	// do anything
	Initialise() error

	// Restore the terminal to its original state, if possible
	CleanUp()

	// TermRead blocks until a complete line has been entered. The line is
	// returned without the line ending
	TermRead(prompt string) (string, error)

	// TermPrintLine prints a single line of text. It may be called while
	// another goroutine is waiting in TermRead()
	TermPrintLine(style Style, text string)

	// IsInteractive returns true if a user is expected to be typing
	IsInteractive() bool
}

// Output adapts a Terminal so that it can be used wherever text is printed
// one line at a time. Lines beginning with "ERR:" are printed in the error
// style.
type Output struct {
	Term Terminal
}

// Println prints a line of text to the terminal.
func (out Output) Println(text string) {
	if strings.HasPrefix(text, "ERR:") {
		out.Term.TermPrintLine(StyleError, text)
		return
	}
	out.Term.TermPrintLine(StyleNormal, text)
}

// Run reads lines from the terminal until it is closed, the user aborts or
// the context is cancelled. Lines are sent on the returned channel, which is
// closed when reading stops.
//
// A user interrupt abandons the current line but does not stop reading.
func Run(ctx context.Context, term Terminal) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		for {
			s, err := term.TermRead(Prompt)
			if err != nil {
				if curated.Is(err, UserInterrupt) {
					continue
				}
				if !errors.Is(err, io.EOF) && !curated.Is(err, UserAbort) {
					logger.Log("terminal", err)
				}
				return
			}

			select {
			case lines <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
