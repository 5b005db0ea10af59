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

package logger

import "io"

const maxCentral = 256

var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(tag string, detail interface{}) {
	central.Log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag string, format string, args ...interface{}) {
	central.Logf(tag, format, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last number of entries of the central logger to the
// io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho echoes new entries of the central logger to the io.Writer.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
