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
	"fmt"

	"github.com/hakka/hakka/console"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// target implements the console.Target interface for an SDL renderer.
type target struct {
	renderer *sdl.Renderer
}

func toSDLColor(col console.Color) sdl.Color {
	return sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A}
}

func toSDLRect(r console.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// AcquireBackbuffer implements the console.Target interface.
func (t *target) AcquireBackbuffer(w int32, h int32) (console.Backbuffer, error) {
	surf, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_RGBA8888))
	if err != nil {
		return nil, err
	}
	if err := surf.FillRect(nil, 0); err != nil {
		surf.Free()
		return nil, err
	}
	return &backbuffer{surf: surf}, nil
}

// Present implements the console.Target interface.
func (t *target) Present(bb console.Backbuffer, dst console.Rect) error {
	sb, ok := bb.(*backbuffer)
	if !ok || sb.surf == nil {
		return fmt.Errorf("sdlplay: backbuffer not acquired from this target")
	}
	return t.copySurface(sb.surf, toSDLRect(dst))
}

// FillRect implements the console.Target interface.
func (t *target) FillRect(dst console.Rect, col console.Color) error {
	if err := t.renderer.SetDrawColor(col.R, col.G, col.B, col.A); err != nil {
		return err
	}
	return t.renderer.FillRect(toSDLRect(dst))
}

// Line implements the console.Target interface.
func (t *target) Line(x1, y1, x2, y2 int32, col console.Color) error {
	if !gfx.ThickLineColor(t.renderer, x1, y1, x2, y2, 1, toSDLColor(col)) {
		return fmt.Errorf("sdlplay: line: %v", sdl.GetError())
	}
	return nil
}

// Draw implements the console.Target interface.
func (t *target) Draw(g console.Glyphs, x int32, y int32) error {
	surf, err := surfaceOf(g)
	if err != nil {
		return err
	}
	return t.copySurface(surf, &sdl.Rect{X: x, Y: y, W: surf.W, H: surf.H})
}

func (t *target) copySurface(surf *sdl.Surface, dst *sdl.Rect) error {
	tex, err := t.renderer.CreateTextureFromSurface(surf)
	if err != nil {
		return err
	}
	defer tex.Destroy()

	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return err
	}
	return t.renderer.Copy(tex, nil, dst)
}

// backbuffer implements the console.Backbuffer interface.
type backbuffer struct {
	surf *sdl.Surface
}

// Blit implements the console.Backbuffer interface.
func (bb *backbuffer) Blit(g console.Glyphs, x int32, y int32) error {
	src, err := surfaceOf(g)
	if err != nil {
		return err
	}
	return src.Blit(nil, bb.surf, &sdl.Rect{X: x, Y: y, W: src.W, H: src.H})
}

// Release implements the console.Backbuffer interface.
func (bb *backbuffer) Release() {
	if bb.surf != nil {
		bb.surf.Free()
		bb.surf = nil
	}
}
