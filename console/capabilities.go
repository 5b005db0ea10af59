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

// Color is an RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Rect is a rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Glyphs is a string of text that has been rasterised by a Typeface. Glyphs
// must be released when they are no longer needed.
type Glyphs interface {
	Size() (w int32, h int32)
	Release()
}

// Typeface measures and rasterises text.
type Typeface interface {
	// Measure returns the width in pixels of the text
	Measure(text string) (int32, error)

	// Rasterize renders the text in the colour
	Rasterize(text string, col Color) (Glyphs, error)

	// LineHeight returns the height of a line of text in pixels
	LineHeight() int32
}

// Backbuffer is an off-screen image into which the visible part of the
// output log is drawn.
type Backbuffer interface {
	Blit(g Glyphs, x int32, y int32) error
	Release()
}

// Target is the frame onto which the console is composited.
type Target interface {
	// AcquireBackbuffer returns a new, transparent, Backbuffer. The
	// Backbuffer is released by the caller
	AcquireBackbuffer(w int32, h int32) (Backbuffer, error)

	// Present draws the Backbuffer to the frame
	Present(bb Backbuffer, dst Rect) error

	FillRect(dst Rect, col Color) error
	Line(x1, y1, x2, y2 int32, col Color) error
	Draw(g Glyphs, x int32, y int32) error
}
