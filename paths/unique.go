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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The name is made of the prefix,
// an optional qualifier and a timestamp. The extension, if not empty, is
// appended with a leading period.
func UniqueFilename(prefix string, qualifier string, extension string) string {
	return uniqueFilename(time.Now(), prefix, qualifier, extension)
}

func uniqueFilename(n time.Time, prefix string, qualifier string, extension string) string {
	fn := prefix
	if q := strings.TrimSpace(qualifier); q != "" {
		fn = fmt.Sprintf("%s_%s", fn, q)
	}
	fn = fmt.Sprintf("%s_%s", fn, n.Format("20060102_150405"))
	if extension != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(extension, "."))
	}
	return fn
}
