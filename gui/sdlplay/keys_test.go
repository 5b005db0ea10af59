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
	"testing"

	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateKey(t *testing.T) {
	test.ExpectEquality(t, translateKey(sdl.K_KP_ENTER, sdl.SCANCODE_KP_ENTER), console.KeyReturn)
	test.ExpectEquality(t, translateKey(sdl.K_RETURN, sdl.SCANCODE_RETURN), console.KeyReturn)
	test.ExpectEquality(t, translateKey(sdl.K_PAGEUP, sdl.SCANCODE_PAGEUP), console.KeyPageUp)
	test.ExpectEquality(t, translateKey(sdl.K_c, sdl.SCANCODE_C), console.KeyC)
	test.ExpectEquality(t, translateKey(sdl.K_a, sdl.SCANCODE_A), console.KeyOther)
	test.ExpectEquality(t, translateKey(sdl.K_ESCAPE, sdl.SCANCODE_ESCAPE), console.KeyOther)
}

func TestTranslateToggleKey(t *testing.T) {
	// qwerty
	test.ExpectEquality(t, translateKey(sdl.K_BACKQUOTE, sdl.SCANCODE_GRAVE), console.KeyToggle)

	// azerty and qwertz put other symbols on the same key
	test.ExpectEquality(t, translateKey(sdl.Keycode('²'), sdl.SCANCODE_GRAVE), console.KeyToggle)
	test.ExpectEquality(t, translateKey(sdl.Keycode('^'), sdl.SCANCODE_GRAVE), console.KeyToggle)

	// the backquote symbol somewhere else on the keyboard is not the toggle
	test.ExpectEquality(t, translateKey(sdl.K_BACKQUOTE, sdl.SCANCODE_EQUALS), console.KeyOther)
}

func TestTranslateMod(t *testing.T) {
	test.ExpectEquality(t, translateMod(0), console.KeyModNone)
	test.ExpectEquality(t, translateMod(sdl.KMOD_LCTRL), console.KeyModCtrl)
	test.ExpectEquality(t, translateMod(sdl.KMOD_RSHIFT|sdl.KMOD_LALT), console.KeyModShift|console.KeyModAlt)
}
