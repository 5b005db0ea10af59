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

package commands

import (
	"strings"
)

// Output is where the results of a command are printed.
type Output interface {
	Println(text string)
}

// lineWriter adapts an Output to the io.Writer interface. Incomplete lines
// are held until the next newline or a call to flush().
type lineWriter struct {
	out  Output
	part strings.Builder
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			lw.out.Println(strings.TrimSuffix(lw.part.String(), "\r"))
			lw.part.Reset()
			continue
		}
		lw.part.WriteByte(b)
	}
	return len(p), nil
}

func (lw *lineWriter) flush() {
	if lw.part.Len() > 0 {
		lw.out.Println(lw.part.String())
		lw.part.Reset()
	}
}
