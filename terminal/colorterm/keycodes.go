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

// control codes read from a terminal in raw mode.
const (
	keyCtrlA     = 1
	keyInterrupt = 3
	keyEOT       = 4
	keyCtrlE     = 5
	keyBackspace = 8
	keyLineFeed  = 10
	keyReturn    = 13
	keyEsc       = 27
	keyDelete    = 127
)

// second byte of an escape sequence.
const (
	escCSI = '['
	escSS3 = 'O'
)

// final byte of a CSI or SS3 sequence.
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorHome     = 'H'
	cursorEnd      = 'F'
)

// ESC [ 3 ~ is the delete key
const (
	escDelete = '3'
	escTilde  = '~'
)

// ANSI output sequences.
const (
	ansiClearLine = "\x1b[2K"
)
