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

import "strings"

// Scrollback is the line-oriented output log. The most recently added line
// may be open, in which case the next call to Print() extends it rather than
// starting a new line.
//
// The number of lines can be capped with SetMax(). Lines beyond the cap are
// discarded oldest first.
type Scrollback struct {
	lines []string

	// whether the most recent line has been terminated
	lineEnding bool

	// zero means no limit
	max int
}

// NewScrollback is the preferred method of initialisation for the Scrollback
// type.
func NewScrollback(max int) *Scrollback {
	return &Scrollback{
		lineEnding: true,
		max:        max,
	}
}

// SetMax changes the maximum number of lines, trimming the log if necessary.
// Zero or less means no limit.
func (sb *Scrollback) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	sb.max = max
	sb.trim()
}

func (sb *Scrollback) trim() {
	if sb.max > 0 && len(sb.lines) > sb.max {
		sb.lines = sb.lines[len(sb.lines)-sb.max:]
	}
}

// Print appends text to the open line, or starts a new open line if the
// previous line has been terminated.
func (sb *Scrollback) Print(text string) {
	if !sb.lineEnding && len(sb.lines) > 0 {
		sb.lines[len(sb.lines)-1] += text
	} else {
		sb.lines = append(sb.lines, text)
		sb.trim()
	}
	sb.lineEnding = false
}

// Println adds text as a new, terminated line.
func (sb *Scrollback) Println(text string) {
	sb.lines = append(sb.lines, text)
	sb.lineEnding = true
	sb.trim()
}

// PrintLines splits text on line breaks and adds each part with Println(). A
// trailing line break does not produce an empty final line but a text that is
// only a line break produces a single empty line.
func (sb *Scrollback) PrintLines(text string) {
	if text == "" {
		return
	}
	text = strings.TrimSuffix(text, "\n")
	for _, l := range strings.Split(text, "\n") {
		sb.Println(strings.TrimSuffix(l, "\r"))
	}
}

// Clear removes all lines.
func (sb *Scrollback) Clear() {
	sb.lines = sb.lines[:0]
	sb.lineEnding = true
}

// Len returns the number of lines.
func (sb *Scrollback) Len() int {
	return len(sb.lines)
}

// Line returns the line at index i, where zero is the oldest line.
func (sb *Scrollback) Line(i int) string {
	return sb.lines[i]
}

// Lines returns a copy of all lines, oldest first.
func (sb *Scrollback) Lines() []string {
	c := make([]string, len(sb.lines))
	copy(c, sb.lines)
	return c
}

// Newest calls f for at most n lines, starting with the newest. The rank
// argument counts up from zero for the newest line. Iteration stops early if f
// returns false.
func (sb *Scrollback) Newest(n int, f func(rank int, line string) bool) {
	for rank := 0; rank < n && rank < len(sb.lines); rank++ {
		if !f(rank, sb.lines[len(sb.lines)-1-rank]) {
			return
		}
	}
}
