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
	"github.com/hakka/hakka/ship"
	"github.com/veandco/go-sdl2/sdl"
)

// Controller receives the events that the console has not consumed.
type Controller interface {
	Quit()
	ShipInput(in ship.Input, down bool)
}

// Service handles all pending SDL events. Events are offered to the console
// first.
func (scr *SdlPlay) Service(ctrl Controller) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			ctrl.Quit()

		case *sdl.TextInputEvent:
			scr.con.HandleEvent(console.EventTextInput{
				Text:      ev.GetText(),
				Timestamp: ev.Timestamp,
			})

		case *sdl.MouseWheelEvent:
			scr.con.HandleEvent(console.EventScroll{Delta: int(ev.Y)})

		case *sdl.KeyboardEvent:
			serviceKeyboard(scr.con, ev, ctrl)
		}
	}
}

// serviceKeyboard offers the key event to the console. keys the console does
// not consume drive the application.
//
// releases of the ship keys always reach the controller. the key may have
// been pressed while the console was hidden
func serviceKeyboard(con *console.Console, ev *sdl.KeyboardEvent, ctrl Controller) {
	key := translateKey(ev.Keysym.Sym, ev.Keysym.Scancode)

	// a held toggle key would flicker the console
	if key == console.KeyToggle && ev.Repeat != 0 {
		return
	}

	down := ev.Type == sdl.KEYDOWN

	consumed := con.HandleEvent(console.EventKey{
		Key:       key,
		Mod:       translateMod(ev.Keysym.Mod),
		Down:      down,
		Timestamp: ev.Timestamp,
	})
	if ev.Repeat != 0 {
		return
	}

	if !down {
		switch ev.Keysym.Sym {
		case sdl.K_LEFT:
			ctrl.ShipInput(ship.InputLeft, false)
		case sdl.K_RIGHT:
			ctrl.ShipInput(ship.InputRight, false)
		}
		return
	}

	if consumed {
		return
	}

	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		ctrl.Quit()
	case sdl.K_LEFT:
		ctrl.ShipInput(ship.InputLeft, true)
	case sdl.K_RIGHT:
		ctrl.ShipInput(ship.InputRight, true)
	}
}
