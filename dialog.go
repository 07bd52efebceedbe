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

package sketch

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/canvas"
)

// StyleTarget is something whose line style can be edited.
// A *Surface is a StyleTarget.
type StyleTarget interface {
	Style() canvas.Style
	SetStyle(canvas.Style) error
}

// Channel selects one channel of a color.
type Channel int

// The color channels, in the order in which color dialogs show them.
const (
	Alpha Channel = iota
	Red
	Green
	Blue
)

// StyleEditor holds a proposed change to the line style of a target, for
// example while the user moves the sliders of a color or width dialog.
//
// The target is not modified until Commit is called.  Only the fields
// which were changed through the editor are written back; all other
// fields keep the value the target has at commit time.
type StyleEditor struct {
	// OnChange, if set, is called with the pending style after every
	// change, for example to update a preview.
	OnChange func(canvas.Style)

	target   StyleTarget
	pending  canvas.Style
	colorSet bool
	widthSet bool
}

// NewStyleEditor returns an editor seeded with the current style of t.
func NewStyleEditor(t StyleTarget) *StyleEditor {
	return &StyleEditor{
		target:  t,
		pending: t.Style(),
	}
}

// SetColor proposes a new stroke color.
func (e *StyleEditor) SetColor(c color.NRGBA) {
	e.pending.Color = c
	e.colorSet = true
	e.changed()
}

// SetChannel proposes a new value for one channel of the stroke color.
func (e *StyleEditor) SetChannel(ch Channel, v uint8) {
	c := e.pending.Color
	switch ch {
	case Alpha:
		c.A = v
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	default:
		return
	}
	e.SetColor(c)
}

// Channel returns the pending value of one color channel.
func (e *StyleEditor) Channel(ch Channel) uint8 {
	c := e.pending.Color
	switch ch {
	case Alpha:
		return c.A
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	}
	return 0
}

// SetWidth proposes a new stroke width.
func (e *StyleEditor) SetWidth(w float64) {
	e.pending.Width = w
	e.widthSet = true
	e.changed()
}

// Pending returns the proposed style.
func (e *StyleEditor) Pending() canvas.Style {
	return e.pending
}

// Commit applies the proposed changes to the target.
func (e *StyleEditor) Commit() error {
	st := e.target.Style()
	if e.colorSet {
		st = st.WithColor(e.pending.Color)
	}
	if e.widthSet {
		st = st.WithWidth(e.pending.Width)
	}
	return e.target.SetStyle(st)
}

func (e *StyleEditor) changed() {
	if e.OnChange != nil {
		e.OnChange(e.pending)
	}
}

// Eraser is something which can be erased.
// A *Surface is an Eraser.
type Eraser interface {
	Clear()
}

// ConfirmErase guards an erase operation behind a confirmation step.
// While a confirmation is pending, further erase requests are ignored, so
// that at most one confirmation dialog is shown at a time.
type ConfirmErase struct {
	target  Eraser
	pending bool
}

// NewConfirmErase returns a guard for erasing e.
func NewConfirmErase(e Eraser) *ConfirmErase {
	return &ConfirmErase{target: e}
}

// Request asks for the target to be erased.  It returns true if a
// confirmation should be shown to the user, and false if a confirmation is
// already pending.
func (c *ConfirmErase) Request() bool {
	if c.pending {
		return false
	}
	c.pending = true
	return true
}

// Pending reports whether a confirmation is outstanding.
func (c *ConfirmErase) Pending() bool {
	return c.pending
}

// Confirm erases the target.  Without a pending request, Confirm does
// nothing.
func (c *ConfirmErase) Confirm() {
	if !c.pending {
		return
	}
	c.pending = false
	c.target.Clear()
}

// Cancel drops the pending request.
func (c *ConfirmErase) Cancel() {
	c.pending = false
}

// Size and geometry of the width preview image.
const (
	PreviewWidth  = 400
	PreviewHeight = 100
)

// WidthPreview draws a horizontal sample stroke with style st on a
// transparent PreviewWidth×PreviewHeight image.
func WidthPreview(st canvas.Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PreviewWidth, PreviewHeight))
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 30, Y: 50}).
		LineTo(vec.Vec2{X: 370, Y: 50})
	canvas.StrokeOnto(img, line.Iter(), st)
	return img
}
