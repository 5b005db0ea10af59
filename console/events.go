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

// Event is the closed set of input events understood by the console. The
// concrete types are EventTextInput, EventKey and EventScroll.
type Event interface {
	consoleEvent()
}

// EventTextInput is a fragment of text typed by the user. It is usually a
// single character.
type EventTextInput struct {
	Text      string
	Timestamp uint32
}

// Key identifies the keys the console reacts to. Keys that have no meaning
// to the console are translated to KeyOther.
type Key int

// List of valid Key values.
const (
	KeyOther Key = iota
	KeyToggle
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyReturn
	KeyC
)

// KeyMod is a bitmask of modifier keys held when a key event occurred.
type KeyMod int

// List of valid KeyMod bits.
const (
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
)

// KeyModNone indicates that no modifier keys were held.
const KeyModNone KeyMod = 0

// EventKey is a key press or release.
type EventKey struct {
	Key       Key
	Mod       KeyMod
	Down      bool
	Timestamp uint32
}

// EventScroll is a movement of the mouse wheel. Positive values scroll
// towards older output.
type EventScroll struct {
	Delta int
}

func (EventTextInput) consoleEvent() {}
func (EventKey) consoleEvent()       {}
func (EventScroll) consoleEvent()    {}
