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
	"unicode"
	"unicode/utf8"
)

// Input is an editable line of text with a cursor. The cursor is a byte offset
// into the text and always sits on a rune boundary.
type Input struct {
	buffer []byte
	cursor int
}

func (in *Input) String() string {
	return string(in.buffer)
}

// Cursor returns the byte offset of the cursor.
func (in *Input) Cursor() int {
	return in.cursor
}

// Len returns the length of the input in bytes.
func (in *Input) Len() int {
	return len(in.buffer)
}

// BeforeCursor returns the text to the left of the cursor.
func (in *Input) BeforeCursor() string {
	return string(in.buffer[:in.cursor])
}

// Insert adds text at the cursor position and moves the cursor to the end of
// the inserted text. Non-printable runes and invalid encodings are dropped.
func (in *Input) Insert(text string) {
	var ins []byte
	for len(text) > 0 {
		r, w := utf8.DecodeRuneInString(text)
		text = text[w:]
		if (r == utf8.RuneError && w == 1) || !unicode.IsPrint(r) {
			continue
		}
		ins = utf8.AppendRune(ins, r)
	}
	if len(ins) == 0 {
		return
	}

	n := make([]byte, 0, len(in.buffer)+len(ins))
	n = append(n, in.buffer[:in.cursor]...)
	n = append(n, ins...)
	n = append(n, in.buffer[in.cursor:]...)
	in.buffer = n
	in.cursor += len(ins)
}

// Left moves the cursor one rune to the left. Returns false if the cursor was
// already at the start of the line.
func (in *Input) Left() bool {
	if in.cursor == 0 {
		return false
	}
	_, w := utf8.DecodeLastRune(in.buffer[:in.cursor])
	in.cursor -= w
	return true
}

// Right moves the cursor one rune to the right. Returns false if the cursor
// was already at the end of the line.
func (in *Input) Right() bool {
	if in.cursor >= len(in.buffer) {
		return false
	}
	_, w := utf8.DecodeRune(in.buffer[in.cursor:])
	in.cursor += w
	return true
}

// Home moves the cursor to the start of the line.
func (in *Input) Home() {
	in.cursor = 0
}

// End moves the cursor to the end of the line.
func (in *Input) End() {
	in.cursor = len(in.buffer)
}

// Backspace removes the rune to the left of the cursor.
func (in *Input) Backspace() bool {
	if in.cursor == 0 {
		return false
	}
	_, w := utf8.DecodeLastRune(in.buffer[:in.cursor])
	in.buffer = append(in.buffer[:in.cursor-w], in.buffer[in.cursor:]...)
	in.cursor -= w
	return true
}

// Delete removes the rune to the right of the cursor.
func (in *Input) Delete() bool {
	if !in.Right() {
		return false
	}
	return in.Backspace()
}

// Set replaces the text and places the cursor at the end.
func (in *Input) Set(text string) {
	in.buffer = append(in.buffer[:0], text...)
	in.cursor = len(in.buffer)
}

// Reset empties the line.
func (in *Input) Reset() {
	in.buffer = in.buffer[:0]
	in.cursor = 0
}
