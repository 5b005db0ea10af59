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

package console_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hakka/hakka/console"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/test"
)

const lineHeight = 18

type glyphs struct {
	text     string
	released *int
}

func (g glyphs) Size() (int32, int32) {
	return int32(utf8.RuneCountInString(g.text) * 10), lineHeight
}

func (g glyphs) Release() {
	*g.released++
}

// typeface is a fixed width typeface. every character is ten pixels wide
type typeface struct {
	rasterized []string
	released   int
	fail       string
}

func (f *typeface) Measure(text string) (int32, error) {
	return int32(utf8.RuneCountInString(text) * 10), nil
}

func (f *typeface) Rasterize(text string, _ console.Color) (console.Glyphs, error) {
	if f.fail != "" && text == f.fail {
		return nil, errors.New("rasterize failure")
	}
	f.rasterized = append(f.rasterized, text)
	return glyphs{text: text, released: &f.released}, nil
}

func (f *typeface) LineHeight() int32 {
	return lineHeight
}

// count the number of rasterisations of text with the prefix
func (f *typeface) count(prefix string) int {
	n := 0
	for _, s := range f.rasterized {
		if strings.HasPrefix(s, prefix) {
			n++
		}
	}
	return n
}

type blit struct {
	text string
	x, y int32
}

type backbuffer struct {
	blits    []blit
	released bool
}

func (bb *backbuffer) Blit(g console.Glyphs, x int32, y int32) error {
	bb.blits = append(bb.blits, blit{text: g.(glyphs).text, x: x, y: y})
	return nil
}

func (bb *backbuffer) Release() {
	bb.released = true
}

type line struct {
	x1, y1, x2, y2 int32
	col            console.Color
}

type target struct {
	backbuffers []*backbuffer
	presented   int
	draws       []blit
	lines       []line
	fills       []console.Rect
	failAcquire bool
}

func (tg *target) AcquireBackbuffer(w int32, h int32) (console.Backbuffer, error) {
	if tg.failAcquire {
		return nil, errors.New("no memory")
	}
	bb := &backbuffer{}
	tg.backbuffers = append(tg.backbuffers, bb)
	return bb, nil
}

func (tg *target) Present(bb console.Backbuffer, dst console.Rect) error {
	tg.presented++
	return nil
}

func (tg *target) FillRect(dst console.Rect, col console.Color) error {
	tg.fills = append(tg.fills, dst)
	return nil
}

func (tg *target) Line(x1, y1, x2, y2 int32, col console.Color) error {
	tg.lines = append(tg.lines, line{x1: x1, y1: y1, x2: x2, y2: y2, col: col})
	return nil
}

func (tg *target) Draw(g console.Glyphs, x int32, y int32) error {
	tg.draws = append(tg.draws, blit{text: g.(glyphs).text, x: x, y: y})
	return nil
}

func (tg *target) lastBackbuffer() *backbuffer {
	return tg.backbuffers[len(tg.backbuffers)-1]
}

func TestRenderHidden(t *testing.T) {
	con := console.NewConsole(nil)
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	con.Println("output")
	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, len(face.rasterized), 0)
	test.ExpectEquality(t, len(tg.backbuffers), 0)
	test.ExpectEquality(t, len(tg.fills), 0)
	test.ExpectEquality(t, len(tg.lines), 0)
}

func TestRenderLimit(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}

	// tall enough for every line to be inside the backbuffer
	r := console.NewRenderer(con, face, 640, 300*lineHeight)
	tg := &target{}

	for i := range 250 {
		con.Println(fmt.Sprintf("line %d", i))
	}

	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, face.count("line "), 200)

	// the newest line is at the bottom of the backbuffer
	bb := tg.lastBackbuffer()
	test.ExpectEquality(t, bb.blits[0].text, "line 249")
	test.ExpectEquality(t, bb.blits[0].y, int32(300*lineHeight-2*lineHeight-console.Padding))
	test.ExpectEquality(t, bb.blits[0].x, int32(console.Padding))
	test.ExpectEquality(t, bb.blits[199].text, "line 50")

	// the limit can be changed
	test.DemandSuccess(t, con.Preferences().RenderLimit.Set(10))
	face.rasterized = face.rasterized[:0]
	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, face.count("line "), 10)
}

func TestRenderBoundedByLimit(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	for i := range 5000 {
		con.Println(fmt.Sprintf("line %d", i))
	}

	for n := 0; n < 3; n++ {
		face.rasterized = face.rasterized[:0]
		con.Scroll(100)
		test.ExpectSuccess(t, r.Render(tg))
		if face.count("line ") > 200 {
			t.Errorf("too many lines rasterised: %d", face.count("line "))
		}
	}
}

func TestRenderScrolledToOldest(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	for i := range 1000 {
		con.Println(fmt.Sprintf("line %d", i))
	}

	// only the lines within the render limit can be scrolled to
	con.Scroll(1000000)
	test.ExpectEquality(t, con.ViewportOffset(), 200*lineHeight-(400-2*lineHeight))

	test.ExpectSuccess(t, r.Render(tg))
	bb := tg.lastBackbuffer()
	if len(bb.blits) == 0 {
		t.Fatalf("no output lines drawn")
	}
	test.ExpectEquality(t, bb.blits[len(bb.blits)-1].text, "line 800")
	test.ExpectEquality(t, bb.blits[len(bb.blits)-1].y, int32(lineHeight-console.Padding))

	// a smaller render limit pulls the viewport back
	test.DemandSuccess(t, con.Preferences().RenderLimit.Set(30))
	test.ExpectEquality(t, con.ViewportOffset(), 30*lineHeight-(400-2*lineHeight))

	face.rasterized = face.rasterized[:0]
	test.ExpectSuccess(t, r.Render(tg))
	bb = tg.lastBackbuffer()
	if len(bb.blits) == 0 {
		t.Fatalf("no output lines drawn")
	}
	test.ExpectEquality(t, bb.blits[len(bb.blits)-1].text, "line 970")
}

func TestRenderBlankLines(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	con.Println("first")
	con.Println("   ")
	con.Println("")
	con.Println("last")

	test.ExpectSuccess(t, r.Render(tg))

	bb := tg.lastBackbuffer()
	test.ExpectEquality(t, len(bb.blits), 2)
	test.ExpectEquality(t, bb.blits[0].text, "last")
	test.ExpectEquality(t, bb.blits[1].text, "first")

	// the blank lines keep their space in the layout
	test.ExpectEquality(t, bb.blits[0].y-bb.blits[1].y, int32(3*lineHeight))
}

func TestRenderViewportOffset(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	for i := range 50 {
		con.Println(fmt.Sprintf("line %d", i))
	}

	test.ExpectSuccess(t, r.Render(tg))
	y := tg.lastBackbuffer().blits[0].y

	con.Scroll(5)
	test.ExpectEquality(t, con.ViewportOffset(), 30)
	test.ExpectSuccess(t, r.Render(tg))

	// the newest line has been scrolled out of the backbuffer
	bb := tg.lastBackbuffer()
	test.ExpectEquality(t, bb.blits[0].text, "line 48")
	test.ExpectEquality(t, bb.blits[0].y, y+30-lineHeight)
}

func TestRenderPrompt(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	// empty input draws the leader but not the input or the cursor
	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, len(tg.draws), 1)
	test.ExpectEquality(t, tg.draws[0].text, "hakka>")
	test.ExpectEquality(t, tg.draws[0].y, int32(400-lineHeight-console.Padding))
	test.ExpectEquality(t, len(tg.lines), 3)

	typeText(con, "memset")
	pressKey(con, console.KeyLeft, console.KeyModNone)
	pressKey(con, console.KeyLeft, console.KeyModNone)

	tg = &target{}
	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, len(tg.draws), 2)
	test.ExpectEquality(t, tg.draws[1].text, "memset")

	// input follows the leader and a space
	inputX := int32(console.Padding + 7*10)
	test.ExpectEquality(t, tg.draws[1].x, inputX)

	// the cursor is after the fourth character
	test.ExpectEquality(t, len(tg.lines), 4)
	cursor := tg.lines[0]
	test.ExpectEquality(t, cursor.x1, inputX+40)
	test.ExpectEquality(t, cursor.x2, inputX+40)
	test.ExpectEquality(t, cursor.y1, int32(400-lineHeight-console.Padding))
	test.ExpectEquality(t, cursor.y2, int32(400-console.Padding))

	// the leader is rasterised once and reused
	test.ExpectEquality(t, face.count("hakka>"), 1)

	test.DemandSuccess(t, con.Preferences().Leader.Set(">"))
	tg = &target{}
	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, tg.draws[0].text, ">")
	test.ExpectEquality(t, tg.draws[1].x, int32(console.Padding+2*10))
}

func TestRenderBorder(t *testing.T) {
	con := newVisibleConsole()
	r := console.NewRenderer(con, &typeface{}, 640, 400)
	tg := &target{}

	test.ExpectSuccess(t, r.Render(tg))
	test.ExpectEquality(t, len(tg.lines), 3)
	test.ExpectEquality(t, tg.lines[0], line{0, 0, 640, 0, console.BorderColor})
	test.ExpectEquality(t, tg.lines[1], line{640, 0, 640, 400, console.BorderColor})
	test.ExpectEquality(t, tg.lines[2], line{0, 399, 640, 399, console.BorderColor})
}

func TestRenderBackbufferReleased(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{}
	r := console.NewRenderer(con, face, 640, 400)
	tg := &target{}

	con.Println("output")
	typeText(con, "input")
	for range 5 {
		test.ExpectSuccess(t, r.Render(tg))
	}

	test.ExpectEquality(t, len(tg.backbuffers), 5)
	test.ExpectEquality(t, tg.presented, 5)
	for _, bb := range tg.backbuffers {
		test.ExpectSuccess(t, bb.released)
	}

	// every rasterisation except the cached leader has been released
	r.Destroy()
	test.ExpectEquality(t, face.released, len(face.rasterized))
}

func TestRenderFailures(t *testing.T) {
	con := newVisibleConsole()
	face := &typeface{fail: "bad line"}
	r := console.NewRenderer(con, face, 640, 400)

	con.Println("good line")
	con.Println("bad line")

	// a line that cannot be rasterised is skipped
	tg := &target{}
	test.ExpectSuccess(t, r.Render(tg))
	bb := tg.lastBackbuffer()
	test.ExpectEquality(t, len(bb.blits), 1)
	test.ExpectEquality(t, bb.blits[0].text, "good line")

	// failure to acquire the backbuffer aborts the frame
	tg = &target{failAcquire: true}
	err := r.Render(tg)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, console.RenderError))
}
