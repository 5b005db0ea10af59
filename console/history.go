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

// History is the list of committed command lines along with a navigation
// index.
//
// The index ranges from zero to the number of entries. An index equal to the
// number of entries means that no entry is being recalled.
type History struct {
	entries []string
	idx     int
}

// Push appends an entry and resets the navigation index. Empty entries are
// ignored.
func (h *History) Push(entry string) {
	if entry != "" {
		h.entries = append(h.entries, entry)
	}
	h.idx = len(h.entries)
}

// Back moves the index towards older entries and returns the entry at the new
// index. Returns false if there are no older entries.
func (h *History) Back() (string, bool) {
	if h.idx == 0 {
		return "", false
	}
	h.idx--
	return h.entries[h.idx], true
}

// Forward moves the index towards newer entries and returns the entry at the
// new index. Moving past the newest entry returns the empty string. Returns
// false if the index was already past the newest entry.
func (h *History) Forward() (string, bool) {
	if h.idx >= len(h.entries) {
		return "", false
	}
	h.idx++
	if h.idx == len(h.entries) {
		return "", true
	}
	return h.entries[h.idx], true
}

// Rewind places the index past the newest entry.
func (h *History) Rewind() {
	h.idx = len(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the current navigation index.
func (h *History) Index() int {
	return h.idx
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	c := make([]string, len(h.entries))
	copy(c, h.entries)
	return c
}
