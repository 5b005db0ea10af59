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
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// typeface implements the console.Typeface interface.
type typeface struct {
	font       *ttf.Font
	lineHeight int32
}

func newTypeface(path string, size int) (*typeface, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	font.SetStyle(ttf.STYLE_BOLD)

	return &typeface{
		font:       font,
		lineHeight: int32(font.LineSkip()),
	}, nil
}

func (tf *typeface) destroy() {
	tf.font.Close()
}

// Measure implements the console.Typeface interface.
func (tf *typeface) Measure(text string) (int32, error) {
	if text == "" {
		return 0, nil
	}
	w, _, err := tf.font.SizeUTF8(text)
	if err != nil {
		return 0, err
	}
	return int32(w), nil
}

// Rasterize implements the console.Typeface interface.
func (tf *typeface) Rasterize(text string, col console.Color) (console.Glyphs, error) {
	surf, err := tf.font.RenderUTF8Blended(text, sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A})
	if err != nil {
		return nil, err
	}
	return &glyphs{surf: surf}, nil
}

// LineHeight implements the console.Typeface interface.
func (tf *typeface) LineHeight() int32 {
	return tf.lineHeight
}

// glyphs implements the console.Glyphs interface.
type glyphs struct {
	surf *sdl.Surface
}

// Size implements the console.Glyphs interface.
func (g *glyphs) Size() (int32, int32) {
	return g.surf.W, g.surf.H
}

// Release implements the console.Glyphs interface.
func (g *glyphs) Release() {
	if g.surf != nil {
		g.surf.Free()
		g.surf = nil
	}
}

func surfaceOf(g console.Glyphs) (*sdl.Surface, error) {
	sg, ok := g.(*glyphs)
	if !ok || sg.surf == nil {
		return nil, fmt.Errorf("sdlplay: glyphs not rasterised by this typeface")
	}
	return sg.surf, nil
}
