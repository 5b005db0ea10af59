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

package console_test

import (
	"testing"

	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/test"
	"pgregory.net/rapid"
)

func TestHistoryNavigation(t *testing.T) {
	var h console.History

	_, ok := h.Back()
	test.ExpectFailure(t, ok)
	_, ok = h.Forward()
	test.ExpectFailure(t, ok)

	h.Push("a")
	h.Push("")
	h.Push("b")
	test.ExpectEquality(t, h.Len(), 2)
	test.ExpectEquality(t, h.Index(), 2)

	s, ok := h.Back()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "b")

	s, _ = h.Back()
	test.ExpectEquality(t, s, "a")

	// clamped at the oldest entry
	_, ok = h.Back()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, h.Index(), 0)

	s, _ = h.Forward()
	test.ExpectEquality(t, s, "b")

	// moving past the newest entry gives the empty string
	s, ok = h.Forward()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "")
	test.ExpectEquality(t, h.Index(), 2)

	_, ok = h.Forward()
	test.ExpectFailure(t, ok)
}

func TestHistoryRewind(t *testing.T) {
	var h console.History
	h.Push("a")
	h.Push("b")
	h.Back()
	h.Back()
	h.Rewind()
	test.ExpectEquality(t, h.Index(), 2)

	e := h.Entries()
	e[0] = "changed"
	test.ExpectEquality(t, h.Entries()[0], "a")
}

func TestHistoryIndexProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var h console.History
		length := 0

		for _, op := range rapid.SliceOfN(rapid.IntRange(0, 2), 0, 50).Draw(t, "ops") {
			switch op {
			case 0:
				s := rapid.StringMatching(`[a-c]{0,2}`).Draw(t, "entry")
				h.Push(s)
				if s != "" {
					length++
				}
			case 1:
				h.Back()
			case 2:
				h.Forward()
			}

			if h.Len() != length {
				t.Fatalf("history length changed unexpectedly: %d != %d", h.Len(), length)
			}
			if h.Index() < 0 || h.Index() > h.Len() {
				t.Fatalf("history index out of range: %d", h.Index())
			}
		}
	})
}
