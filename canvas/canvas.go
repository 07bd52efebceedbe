// seehuhn.de/go/sketch - multi-touch sketching on an anti-aliased raster
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas implements the persistent raster of a sketch.
//
// A [Canvas] owns an RGBA pixel buffer, filled with a background color.
// Completed strokes are merged into the buffer and stay there until the
// canvas is cleared or resized.  There is no undo.
//
// Strokes are drawn with round caps and round joins.  Coverage is computed
// by [raster.Rasterizer] and blended into the target using source-over
// compositing.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/raster"
)

// MaxSize is the largest supported width or height of a canvas.
const MaxSize = 1 << 14

// ErrInvalidSize is returned when a canvas is created or resized with
// dimensions which are not positive or exceed MaxSize.
var ErrInvalidSize = errors.New("invalid canvas size")

// Canvas is a fixed-size pixel buffer holding all committed strokes.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	bg  color.RGBA

	pen *pen
}

// New allocates a canvas of the given size, filled with bg.
// If bg is nil, DefaultBackground is used.
func New(width, height int, bg color.Color) (*Canvas, error) {
	if bg == nil {
		bg = DefaultBackground
	}
	c := &Canvas{
		bg:  color.RGBAModel.Convert(bg).(color.RGBA),
		pen: newPen(),
	}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize replaces the buffer by a new one of the given size, filled with
// the background color.
//
// Resize is destructive: all previous content is lost, even if the size
// does not change.  If the size is invalid, an error wrapping
// ErrInvalidSize is returned and the canvas is left unchanged.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	if c.img == nil || c.img.Rect.Dx() != width || c.img.Rect.Dy() != height {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	c.Clear()
	return nil
}

// Clear fills the buffer with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.bg), image.Point{}, draw.Src)
}

// Merge draws the stroke p into the buffer.  This cannot be undone.
func (c *Canvas) Merge(p path.Path, st Style) {
	c.Stroke(c.img, p, st)
}

// Snapshot returns a copy of the buffer.  Later changes to the canvas do
// not affect the copy.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

// Bounds returns the rectangle covered by the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Background returns the background color.
func (c *Canvas) Background() color.Color {
	return c.bg
}

// DrawTo copies the buffer into dst, aligning the origins.
func (c *Canvas) DrawTo(dst *image.RGBA) {
	draw.Draw(dst, dst.Rect, c.img, dst.Rect.Min, draw.Src)
}

// Stroke draws p onto dst using the style st.  This is used both for
// merging strokes into the canvas and for drawing live strokes on top of
// a copy of the canvas.  Invalid styles draw nothing.
func (c *Canvas) Stroke(dst *image.RGBA, p path.Path, st Style) {
	c.pen.stroke(dst, p, st)
}

// StrokeOnto draws p onto dst using the style st, with the same rendering
// as [Canvas.Stroke].  Invalid styles draw nothing.
func StrokeOnto(dst *image.RGBA, p path.Path, st Style) {
	newPen().stroke(dst, p, st)
}

// pen holds the rasterizer and the coverage mask used for drawing strokes.
type pen struct {
	r    *raster.Rasterizer
	mask *image.Alpha
}

func newPen() *pen {
	r := raster.NewRasterizer(rect.Rect{})
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	return &pen{r: r}
}

func (pn *pen) stroke(dst *image.RGBA, p path.Path, st Style) {
	if st.Validate() != nil {
		return
	}

	b := dst.Rect
	if pn.mask == nil || pn.mask.Rect != b {
		pn.mask = image.NewAlpha(b)
	}
	pn.r.Clip = rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	pn.r.Width = st.Width

	dirty := image.Rectangle{}
	pn.r.Stroke(p, func(y, xMin int, coverage []float32) {
		k := pn.mask.PixOffset(xMin, y)
		row := pn.mask.Pix[k : k+len(coverage)]
		for i, v := range coverage {
			row[i] = uint8(v*255 + 0.5)
		}
		dirty = dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if dirty.Empty() {
		return
	}

	draw.DrawMask(dst, dirty, image.NewUniform(st.Color), image.Point{},
		pn.mask, dirty.Min, draw.Over)

	for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
		k := pn.mask.PixOffset(dirty.Min.X, y)
		clear(pn.mask.Pix[k : k+dirty.Dx()])
	}
}
