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
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/logger"
	"github.com/hakka/hakka/sfx"
	"github.com/hakka/hakka/ship"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Window geometry. The console occupies the left half of the window.
const (
	WindowTitle  = "Hakka"
	WindowWidth  = 1280
	WindowHeight = 400
)

// SDLError is the pattern for errors from the SDL library.
const SDLError = "sdlplay: %v"

// SdlPlay is the SDL front end.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	face   *typeface
	target *target

	con       *console.Console
	conRender *console.Renderer

	ship *shipSprite

	// nil if no audio device or commit sound is available
	audio *audio

	// the font preferences the typeface was created with
	fontPath string
	fontSize int
}

// NewSdlPlay opens the window and prepares everything needed to draw the
// ship and the console.
func NewSdlPlay(con *console.Console, p *Preferences) (*SdlPlay, error) {
	scr := &SdlPlay{con: con}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	var err error

	scr.window, err = sdl.CreateWindow(WindowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		WindowWidth, WindowHeight,
		sdl.WINDOW_SHOWN)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	if err := scr.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.target = &target{renderer: scr.renderer}

	if err := scr.openTypeface(); err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.ship = newShipSprite(scr.renderer, p.ShipImage.String())

	if fn := p.CommitSound.String(); fn != "" {
		if pcm, err := sfx.Load(fn); err != nil {
			logger.Log("sdlplay", err)
		} else if scr.audio, err = newAudio(pcm); err != nil {
			logger.Logf("sdlplay", "audio: %v", err)
		}
	}

	sdl.StartTextInput()

	return scr, nil
}

// open the typeface named in the console preferences and create a console
// renderer that uses it
func (scr *SdlPlay) openTypeface() error {
	cp := scr.con.Preferences()
	path := cp.FontPath.String()
	size := cp.FontSize.Get().(int)

	face, err := newTypeface(path, size)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	if scr.conRender != nil {
		scr.conRender.Destroy()
	}
	if scr.face != nil {
		scr.face.destroy()
	}

	scr.face = face
	scr.fontPath = path
	scr.fontSize = size
	scr.conRender = console.NewRenderer(scr.con, face, WindowWidth/2, WindowHeight)

	logger.Logf("sdlplay", "font: %s (%d)", path, size)

	return nil
}

// Destroy releases all SDL resources.
func (scr *SdlPlay) Destroy() {
	sdl.StopTextInput()

	if scr.audio != nil {
		scr.audio.destroy()
	}
	if scr.ship != nil {
		scr.ship.destroy()
	}
	if scr.conRender != nil {
		scr.conRender.Destroy()
	}
	if scr.face != nil {
		scr.face.destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}

	ttf.Quit()
	sdl.Quit()
}

// PlayCommit plays the commit sound, if there is one.
func (scr *SdlPlay) PlayCommit() {
	if scr.audio == nil {
		return
	}
	if err := scr.audio.playCommit(); err != nil {
		logger.Logf("sdlplay", "audio: %v", err)
	}
}

// Render a frame. The ship is only drawn if game is true. The console is
// drawn on top when it is visible.
func (scr *SdlPlay) Render(sh ship.Ship, game bool) error {
	// the font preferences may have changed since the last frame
	cp := scr.con.Preferences()
	if cp.FontPath.String() != scr.fontPath || cp.FontSize.Get().(int) != scr.fontSize {
		if err := scr.openTypeface(); err != nil {
			logger.Log("sdlplay", err)
			scr.fontPath = cp.FontPath.String()
			scr.fontSize = cp.FontSize.Get().(int)
		}
	}

	if err := scr.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	if game {
		if err := scr.ship.draw(scr.renderer, sh); err != nil {
			return curated.Errorf(SDLError, err)
		}
	}

	if err := scr.conRender.Render(scr.target); err != nil {
		// a console that cannot be drawn does not stop the application
		logger.Log("sdlplay", err)
	}

	scr.renderer.Present()

	return nil
}
