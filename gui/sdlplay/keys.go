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

package sdlplay

import (
	"github.com/hakka/hakka/console"
	"github.com/veandco/go-sdl2/sdl"
)

// the toggle key is identified by its position on the keyboard, whatever the
// layout
func translateKey(sym sdl.Keycode, scancode sdl.Scancode) console.Key {
	if scancode == sdl.SCANCODE_GRAVE {
		return console.KeyToggle
	}

	switch sym {
	case sdl.K_LEFT:
		return console.KeyLeft
	case sdl.K_RIGHT:
		return console.KeyRight
	case sdl.K_UP:
		return console.KeyUp
	case sdl.K_DOWN:
		return console.KeyDown
	case sdl.K_HOME:
		return console.KeyHome
	case sdl.K_END:
		return console.KeyEnd
	case sdl.K_PAGEUP:
		return console.KeyPageUp
	case sdl.K_PAGEDOWN:
		return console.KeyPageDown
	case sdl.K_BACKSPACE:
		return console.KeyBackspace
	case sdl.K_DELETE:
		return console.KeyDelete
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return console.KeyReturn
	case sdl.K_c:
		return console.KeyC
	}
	return console.KeyOther
}

func translateMod(mod uint16) console.KeyMod {
	m := console.KeyModNone
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= console.KeyModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= console.KeyModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= console.KeyModAlt
	}
	return m
}
