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
	"strconv"
	"strings"

	"github.com/hakka/hakka/curated"
)

// Sentinal error patterns.
const (
	UnknownCommand  = "unknown command: %s"
	InvalidArgument = "invalid %s: %s"
	UsageError      = "usage: %s"
)

// trims the prefixes that conventionally mark a hexadecimal number
func trimHex(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range []string{"0x", "0X", "$", "#"} {
		if strings.HasPrefix(s, p) {
			return s[len(p):]
		}
	}
	return s
}

// ParseAddress parses a 16bit hexadecimal address. The number can be prefixed
// with 0x, $ or #.
func ParseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, "address", s)
	}
	return uint16(v), nil
}

// ParseValue parses an 8bit hexadecimal value. The number can be prefixed
// with 0x, $ or #.
func ParseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 8)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, "value", s)
	}
	return uint8(v), nil
}

// counts are decimal
func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, curated.Errorf(InvalidArgument, "count", s)
	}
	return v, nil
}
