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
	_ "embed"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed help.po
var helpCatalogue []byte

var catalogue *gotext.Po

func init() {
	catalogue = gotext.NewPo()
	catalogue.Parse(helpCatalogue)
}

// Help returns the help text for the command. The empty string is returned
// for unknown commands.
func Help(keyword string) string {
	id := strings.ToUpper(keyword)
	s := catalogue.Get(id)
	if s == id {
		return ""
	}
	return s
}

// Usage returns the usage text for the command. If the command has no usage
// text the keyword itself is returned.
func Usage(keyword string) string {
	id := fmt.Sprintf("USAGE_%s", strings.ToUpper(keyword))
	s := catalogue.Get(id)
	if s == id {
		return strings.ToLower(keyword)
	}
	return s
}
