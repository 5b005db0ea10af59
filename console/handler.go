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

// HandleEvent updates the console according to the event. It returns true if
// the console consumed the event, in which case the event should not be
// passed to any other part of the application.
//
// The toggle key, pressed without modifiers, is consumed whether or not the
// console is visible. Every other event is consumed only while the console
// is visible.
func (con *Console) HandleEvent(ev Event) bool {
	switch ev := ev.(type) {
	case EventKey:
		return con.handleKey(ev)
	case EventTextInput:
		if !con.visible {
			return false
		}
		con.HandleTextInput(ev.Text, ev.Timestamp)
		return true
	case EventScroll:
		if !con.visible {
			return false
		}
		con.Scroll(ev.Delta)
		return true
	}
	return false
}

func (con *Console) handleKey(ev EventKey) bool {
	if ev.Key == KeyToggle && ev.Mod == KeyModNone {
		if ev.Down {
			con.ToggleVisibility(ev.Timestamp)
		}
		return true
	}

	if !con.visible {
		return false
	}

	// key releases are consumed but otherwise ignored
	if !ev.Down {
		return true
	}

	switch ev.Key {
	case KeyLeft:
		con.CursorLeft()
	case KeyRight:
		con.CursorRight()
	case KeyHome:
		con.CursorHome()
	case KeyEnd:
		con.CursorEnd()
	case KeyBackspace:
		con.Backspace()
	case KeyDelete:
		con.DeleteForward()
	case KeyReturn:
		con.Commit()
	case KeyUp:
		con.HistoryBack()
	case KeyDown:
		con.HistoryForward()
	case KeyPageUp:
		con.ScrollPage(1)
	case KeyPageDown:
		con.ScrollPage(-1)
	case KeyC:
		if ev.Mod&KeyModCtrl == KeyModCtrl {
			con.Interrupt()
		}
	case KeyToggle, KeyOther:
	}

	return true
}
