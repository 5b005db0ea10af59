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

import (
	"io"
	"strings"

	"github.com/gookit/color"
)

var tagStyle = color.Style{color.FgCyan, color.OpBold}

// Colorizer is an io.Writer that highlights the tag of log entries before
// writing them to the underlying writer. It is intended to be used with
// SetEcho() when the output is an interactive terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

func (c Colorizer) Write(p []byte) (int, error) {
	tag, detail, ok := strings.Cut(string(p), ": ")
	if !ok {
		return c.out.Write(p)
	}
	if _, err := io.WriteString(c.out, tagStyle.Sprint(tag)+": "+detail); err != nil {
		return 0, err
	}
	return len(p), nil
}
