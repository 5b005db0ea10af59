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

package console

import (
	"fmt"

	"github.com/hakka/hakka/prefs"
)

// Console is the state of the developer console. It should be created with
// NewConsole().
//
// Console is not safe for concurrent use. All methods are expected to be
// called from the same goroutine that renders the console.
type Console struct {
	prefs *Preferences

	visible bool

	// the timestamp of the event that most recently made the console
	// visible. text input at or before anchor + debounce is discarded
	anchor uint32

	input      Input
	history    History
	scrollback *Scrollback

	// committed command lines waiting to be taken
	committed []string

	// viewport offset in pixels. zero shows the newest output at the bottom
	// of the console
	viewport int

	// geometry of the scroll-back area. set by the renderer
	lineHeight    int
	visibleHeight int
}

// NewConsole is the preferred method of initialisation for the Console type.
// If p is nil then the default preferences are used.
func NewConsole(p *Preferences) *Console {
	if p == nil {
		p, _ = NewPreferences(nil)
	}

	con := &Console{
		prefs:      p,
		scrollback: NewScrollback(p.ScrollbackMax.Get().(int)),
	}

	p.ScrollbackMax.SetHookPost(func(v prefs.Value) error {
		con.scrollback.SetMax(v.(int))
		con.clampViewport()
		return nil
	})
	p.RenderLimit.SetHookPost(func(v prefs.Value) error {
		con.clampViewport()
		return nil
	})

	return con
}

// Preferences returns the preferences in use by the console.
func (con *Console) Preferences() *Preferences {
	return con.prefs
}

// SetGeometry sets the height of a single line of output and the height of
// the whole console, both in pixels. The geometry decides whether the output
// can be scrolled.
func (con *Console) SetGeometry(lineHeight int, height int) {
	con.lineHeight = lineHeight
	con.visibleHeight = height
	con.clampViewport()
}

// Visible returns true if the console is being shown.
func (con *Console) Visible() bool {
	return con.visible
}

// ToggleVisibility shows or hides the console. The timestamp is that of the
// event that caused the toggle.
func (con *Console) ToggleVisibility(timestamp uint32) {
	con.visible = !con.visible
	if con.visible {
		con.anchor = timestamp
	}
}

// HandleTextInput inserts text at the cursor. The text is discarded if the
// console is not visible or if the event happened inside the debounce window
// that follows the console being made visible.
func (con *Console) HandleTextInput(text string, timestamp uint32) {
	if !con.visible {
		return
	}
	if timestamp <= con.anchor+uint32(con.prefs.Debounce.Get().(int)) {
		return
	}
	con.input.Insert(text)
}

// Input returns the current input line and the cursor position, as a byte
// offset into the line.
func (con *Console) Input() (string, int) {
	return con.input.String(), con.input.Cursor()
}

// InputBeforeCursor returns the part of the input line to the left of the
// cursor.
func (con *Console) InputBeforeCursor() string {
	return con.input.BeforeCursor()
}

// CursorLeft moves the cursor one character to the left.
func (con *Console) CursorLeft() {
	if con.visible {
		con.input.Left()
	}
}

// CursorRight moves the cursor one character to the right.
func (con *Console) CursorRight() {
	if con.visible {
		con.input.Right()
	}
}

// CursorHome moves the cursor to the start of the input line.
func (con *Console) CursorHome() {
	if con.visible {
		con.input.Home()
	}
}

// CursorEnd moves the cursor to the end of the input line.
func (con *Console) CursorEnd() {
	if con.visible {
		con.input.End()
	}
}

// Backspace removes the character to the left of the cursor.
func (con *Console) Backspace() {
	if con.visible {
		con.input.Backspace()
	}
}

// DeleteForward removes the character to the right of the cursor.
func (con *Console) DeleteForward() {
	if con.visible {
		con.input.Delete()
	}
}

// echo writes the input line to the scroll-back, prefixed by the leader.
func (con *Console) echo(suffix string) {
	con.scrollback.Println(fmt.Sprintf("%s %s%s", con.prefs.Leader.String(), con.input.String(), suffix))
}

// Commit echoes the input line to the scroll-back and, if it is not empty,
// adds it to the history and makes it available to
// TryTakeCommittedCommand(). The input line is then cleared and the output
// scrolled back to the newest line.
func (con *Console) Commit() {
	if !con.visible {
		return
	}

	con.echo("")

	cmd := con.input.String()
	con.history.Push(cmd)
	if cmd != "" {
		con.committed = append(con.committed, cmd)
	}

	con.input.Reset()
	con.viewport = 0
}

// Interrupt abandons the input line. The line is echoed to the scroll-back
// with a "^C" suffix but is neither added to the history nor committed.
func (con *Console) Interrupt() {
	if !con.visible {
		return
	}
	con.echo("^C")
	con.input.Reset()
	con.history.Rewind()
	con.viewport = 0
}

// TryTakeCommittedCommand returns the oldest committed command line that has
// not yet been taken. A command line is returned only once.
func (con *Console) TryTakeCommittedCommand() (string, bool) {
	if len(con.committed) == 0 {
		return "", false
	}
	cmd := con.committed[0]
	con.committed = con.committed[1:]
	return cmd, true
}

// HistoryBack replaces the input line with the previous history entry.
func (con *Console) HistoryBack() {
	if !con.visible {
		return
	}
	if s, ok := con.history.Back(); ok {
		con.input.Set(s)
	}
}

// HistoryForward replaces the input line with the next history entry, or
// clears the input line if there are no newer entries.
func (con *Console) HistoryForward() {
	if !con.visible {
		return
	}
	if s, ok := con.history.Forward(); ok {
		con.input.Set(s)
	}
}

// History returns a copy of the command history, oldest first.
func (con *Console) History() []string {
	return con.history.Entries()
}

// scrollableHeight returns the number of pixels by which the output exceeds
// the area available to it. zero means the output cannot be scrolled. only
// the lines that the renderer will lay out are counted
func (con *Console) scrollableHeight() int {
	content := min(con.scrollback.Len(), con.prefs.RenderLimit.Get().(int)) * con.lineHeight
	area := con.visibleHeight - 2*con.lineHeight
	if content <= area {
		return 0
	}
	return content - area
}

func (con *Console) scrollPixels(px int) {
	max := con.scrollableHeight()
	if max == 0 {
		return
	}
	con.viewport += px
	con.clampViewport()
}

func (con *Console) clampViewport() {
	max := con.scrollableHeight()
	if con.viewport > max {
		con.viewport = max
	}
	if con.viewport < 0 {
		con.viewport = 0
	}
}

// Scroll moves the viewport through the output. Positive values move towards
// older output. The output can only be scrolled when it does not fit inside
// the console.
func (con *Console) Scroll(delta int) {
	con.scrollPixels(delta * con.prefs.ScrollMultiplier.Get().(int))
}

// ScrollPage moves the viewport by the height of the output area. Positive
// values move towards older output.
func (con *Console) ScrollPage(pages int) {
	con.scrollPixels(pages * (con.visibleHeight - 2*con.lineHeight))
}

// ViewportOffset returns the viewport offset in pixels.
func (con *Console) ViewportOffset() int {
	return con.viewport
}

// Scrollback returns the output log.
func (con *Console) Scrollback() *Scrollback {
	return con.scrollback
}

// Print adds text to the open line of the output log.
func (con *Console) Print(text string) {
	con.scrollback.Print(text)
}

// Println adds text to the output log as a complete line.
func (con *Console) Println(text string) {
	con.scrollback.Println(text)
}

// PrintLines adds each line of a multi-line text to the output log.
func (con *Console) PrintLines(text string) {
	con.scrollback.PrintLines(text)
}

// Write implements the io.Writer interface. Each line of the data is added to
// the output log.
func (con *Console) Write(p []byte) (int, error) {
	con.scrollback.PrintLines(string(p))
	return len(p), nil
}

// Clear empties the output log.
func (con *Console) Clear() {
	con.scrollback.Clear()
	con.viewport = 0
}
