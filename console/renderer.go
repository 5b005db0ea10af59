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

import (
	"strings"

	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/logger"
)

// RenderError is returned by Render() when the frame could not be drawn.
const RenderError = "console: render: %v"

// Padding around the text of the console in pixels.
const Padding = 10

// Colours used by the renderer.
var (
	FontColor       = Color{R: 45, G: 200, B: 45, A: 255}
	BorderColor     = Color{R: 255, G: 255, B: 255, A: 64}
	BackgroundColor = Color{R: 0, G: 0, B: 0, A: 182}
	PromptColor     = Color{R: 0, G: 0, B: 0, A: 255}
)

// Renderer draws a Console. It should be created with NewRenderer().
type Renderer struct {
	con  *Console
	face Typeface

	width  int32
	height int32

	// the leader is rasterised once and kept until the leader preference
	// changes
	leader     Glyphs
	leaderText string

	// horizontal position of the input text
	inputX int32
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. The width and height are the size of the console on the frame.
func NewRenderer(con *Console, face Typeface, width int32, height int32) *Renderer {
	con.SetGeometry(int(face.LineHeight()), int(height))
	return &Renderer{
		con:    con,
		face:   face,
		width:  width,
		height: height,
	}
}

// Destroy releases any resources held by the renderer.
func (r *Renderer) Destroy() {
	if r.leader != nil {
		r.leader.Release()
		r.leader = nil
	}
}

type placement struct {
	text string
	x, y int32
}

// layout decides the position of the output lines that will be drawn into the
// backbuffer. at most RenderLimit lines, newest first, are considered. blank
// lines keep their position in the layout but are not drawn.
func (r *Renderer) layout() []placement {
	lh := r.face.LineHeight()
	bh := r.height - lh
	offset := int32(r.con.ViewportOffset())
	limit := r.con.prefs.RenderLimit.Get().(int)

	var pl []placement

	r.con.scrollback.Newest(limit, func(rank int, line string) bool {
		y := r.height - lh*int32(rank+2) + offset - Padding

		// line is below the backbuffer because the viewport has been
		// scrolled. older lines may still be visible
		if y >= bh {
			return true
		}

		// line is above the backbuffer. older lines will be too
		if y+lh <= 0 {
			return false
		}

		if strings.TrimSpace(line) == "" {
			return true
		}

		pl = append(pl, placement{text: line, x: Padding, y: y})
		return true
	})

	return pl
}

// Render draws the console onto the target. Nothing is drawn if the console
// is not visible.
func (r *Renderer) Render(target Target) error {
	if !r.con.Visible() {
		return nil
	}

	if err := target.FillRect(Rect{W: r.width, H: r.height}, BackgroundColor); err != nil {
		return curated.Errorf(RenderError, err)
	}

	if err := r.renderScrollback(target); err != nil {
		return curated.Errorf(RenderError, err)
	}

	if err := r.renderPrompt(target); err != nil {
		return curated.Errorf(RenderError, err)
	}

	if err := r.renderBorder(target); err != nil {
		return curated.Errorf(RenderError, err)
	}

	return nil
}

func (r *Renderer) renderScrollback(target Target) error {
	bh := r.height - r.face.LineHeight()

	bb, err := target.AcquireBackbuffer(r.width, bh)
	if err != nil {
		return err
	}
	defer bb.Release()

	for _, p := range r.layout() {
		g, err := r.face.Rasterize(p.text, FontColor)
		if err != nil {
			// a line that cannot be rasterised is left out of the frame
			logger.Logf("console", "cannot rasterise output line: %v", err)
			continue
		}
		err = bb.Blit(g, p.x, p.y)
		g.Release()
		if err != nil {
			return err
		}
	}

	return target.Present(bb, Rect{W: r.width, H: bh})
}

func (r *Renderer) prepareLeader() error {
	text := r.con.prefs.Leader.String()
	if r.leader != nil && r.leaderText == text {
		return nil
	}

	r.Destroy()

	g, err := r.face.Rasterize(text, FontColor)
	if err != nil {
		return err
	}

	// input text is separated from the leader by a space, the same as the
	// echoed command in the output log
	w, err := r.face.Measure(text + " ")
	if err != nil {
		g.Release()
		return err
	}

	r.leader = g
	r.leaderText = text
	r.inputX = Padding + w

	return nil
}

func (r *Renderer) renderPrompt(target Target) error {
	if err := r.prepareLeader(); err != nil {
		return err
	}

	promptY := r.height - r.face.LineHeight() - Padding

	// solid background behind the prompt so that output scrolling underneath
	// it is hidden
	if err := target.FillRect(Rect{Y: promptY, W: r.width, H: r.height - promptY}, PromptColor); err != nil {
		return err
	}

	if err := target.Draw(r.leader, Padding, promptY); err != nil {
		return err
	}

	input, _ := r.con.Input()
	if input == "" {
		return nil
	}

	g, err := r.face.Rasterize(input, FontColor)
	if err != nil {
		return err
	}
	err = target.Draw(g, r.inputX, promptY)
	g.Release()
	if err != nil {
		return err
	}

	cw, err := r.face.Measure(r.con.InputBeforeCursor())
	if err != nil {
		return err
	}
	cx := r.inputX + cw

	return target.Line(cx, promptY, cx, r.height-Padding, FontColor)
}

func (r *Renderer) renderBorder(target Target) error {
	// north
	if err := target.Line(0, 0, r.width, 0, BorderColor); err != nil {
		return err
	}

	// east
	if err := target.Line(r.width, 0, r.width, r.height, BorderColor); err != nil {
		return err
	}

	// south
	return target.Line(0, r.height-1, r.width, r.height-1, BorderColor)
}
