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
	"fmt"
	"io"
	"os"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/terminal"
	"github.com/pkg/term"
)

// Sentinal error patterns.
const (
	TTYError = "colorterm: %v"
)

var (
	promptStyle   = color.Style{color.FgGreen, color.OpBold}
	errorStyle    = color.Style{color.FgRed}
	feedbackStyle = color.Style{color.FgGray}
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	tty    *term.Term
	output io.Writer
	reader *bufio.Reader

	input   console.Input
	history console.History

	crit sync.Mutex

	// the prompt of the TermRead() in progress. empty if no TermRead() is in
	// progress
	prompt string
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{}
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	tty, err := term.Open("/dev/tty")
	if err != nil {
		return curated.Errorf(TTYError, err)
	}
	ct.tty = tty
	ct.output = os.Stdout
	ct.reader = bufio.NewReader(tty)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	if ct.tty == nil {
		return
	}
	_ = ct.tty.Restore()
	_ = ct.tty.Close()
	ct.tty = nil
}

// IsInteractive implements the terminal.Terminal interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, text string) {
	switch style {
	case terminal.StyleEcho:
		return
	case terminal.StyleError:
		text = errorStyle.Sprint(text)
	case terminal.StyleFeedback:
		text = feedbackStyle.Sprint(text)
	}

	ct.crit.Lock()
	defer ct.crit.Unlock()

	if ct.prompt == "" {
		io.WriteString(ct.output, text+"\n")
		return
	}

	// raw mode requires an explicit carriage return. the line being edited
	// is redrawn underneath the printed text
	io.WriteString(ct.output, "\r"+ansiClearLine+text+"\r\n")
	ct.redraw()
}

// TermRead implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	if ct.tty == nil {
		return "", curated.Errorf(TTYError, "not initialised")
	}
	if err := ct.tty.SetRaw(); err != nil {
		return "", curated.Errorf(TTYError, err)
	}
	defer ct.tty.Restore()

	return ct.readLine(prompt)
}

// redraw the prompt and input line. the crit lock must be held
func (ct *ColorTerminal) redraw() {
	col := utf8.RuneCountInString(ct.prompt) + utf8.RuneCountInString(ct.input.BeforeCursor())
	s := fmt.Sprintf("\r%s%s%s\r", ansiClearLine, promptStyle.Sprint(ct.prompt), ct.input.String())
	if col > 0 {
		s = fmt.Sprintf("%s\x1b[%dC", s, col)
	}
	io.WriteString(ct.output, s)
}

func (ct *ColorTerminal) endRead(suffix string) {
	io.WriteString(ct.output, suffix+"\r\n")
	ct.prompt = ""
	ct.input.Reset()
	ct.history.Rewind()
}

// readLine implements the line editor. it is separate from TermRead() so that
// it can be used without a tty
func (ct *ColorTerminal) readLine(prompt string) (string, error) {
	ct.crit.Lock()
	ct.prompt = prompt
	ct.input.Reset()
	ct.redraw()
	ct.crit.Unlock()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			ct.crit.Lock()
			ct.endRead("")
			ct.crit.Unlock()
			return "", err
		}

		ct.crit.Lock()

		switch r {
		case keyInterrupt:
			ct.endRead("^C")
			ct.crit.Unlock()
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEOT:
			if ct.input.Len() == 0 {
				ct.endRead("")
				ct.crit.Unlock()
				return "", curated.Errorf(terminal.UserAbort)
			}
			ct.input.Delete()

		case keyReturn, keyLineFeed:
			s := ct.input.String()
			ct.history.Push(s)
			ct.endRead("")
			ct.crit.Unlock()
			return s, nil

		case keyBackspace, keyDelete:
			ct.input.Backspace()

		case keyCtrlA:
			ct.input.Home()

		case keyCtrlE:
			ct.input.End()

		case keyEsc:
			if err := ct.escape(); err != nil {
				ct.endRead("")
				ct.crit.Unlock()
				return "", err
			}

		default:
			if unicode.IsPrint(r) {
				ct.input.Insert(string(r))
			}
		}

		ct.redraw()
		ct.crit.Unlock()
	}
}

// handle an escape sequence. the escape byte has already been read
func (ct *ColorTerminal) escape() error {
	r, _, err := ct.reader.ReadRune()
	if err != nil {
		return err
	}
	if r != escCSI && r != escSS3 {
		return nil
	}

	r, _, err = ct.reader.ReadRune()
	if err != nil {
		return err
	}

	switch r {
	case cursorUp:
		if s, ok := ct.history.Back(); ok {
			ct.input.Set(s)
		}
	case cursorDown:
		if s, ok := ct.history.Forward(); ok {
			ct.input.Set(s)
		}
	case cursorForward:
		ct.input.Right()
	case cursorBackward:
		ct.input.Left()
	case cursorHome:
		ct.input.Home()
	case cursorEnd:
		ct.input.End()
	case escDelete:
		r, _, err = ct.reader.ReadRune()
		if err != nil {
			return err
		}
		if r == escTilde {
			ct.input.Delete()
		}
	}

	return nil
}
