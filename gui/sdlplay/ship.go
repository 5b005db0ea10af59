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
	"github.com/hakka/hakka/logger"
	"github.com/hakka/hakka/ship"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// size of the ship when there is no image
const fallbackShipSize = 32

var fallbackShipColor = sdl.Color{R: 200, G: 200, B: 255, A: 255}

type shipSprite struct {
	tex  *sdl.Texture
	w, h int32
}

func newShipSprite(renderer *sdl.Renderer, path string) *shipSprite {
	spr := &shipSprite{w: fallbackShipSize, h: fallbackShipSize}

	tex, err := img.LoadTexture(renderer, path)
	if err != nil {
		logger.Logf("sdlplay", "ship image: %v", err)
		return spr
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		logger.Logf("sdlplay", "ship image: %v", err)
		tex.Destroy()
		return spr
	}

	spr.tex = tex
	spr.w = w
	spr.h = h

	return spr
}

func (spr *shipSprite) destroy() {
	if spr.tex != nil {
		spr.tex.Destroy()
		spr.tex = nil
	}
}

func (spr *shipSprite) draw(renderer *sdl.Renderer, sh ship.Ship) error {
	if spr.tex != nil {
		return renderer.Copy(spr.tex, nil, &sdl.Rect{X: sh.X, Y: sh.Y, W: spr.w, H: spr.h})
	}

	gfx.FilledTrigonColor(renderer,
		sh.X, sh.Y+spr.h,
		sh.X+spr.w/2, sh.Y,
		sh.X+spr.w, sh.Y+spr.h,
		fallbackShipColor)

	return nil
}
