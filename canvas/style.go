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

package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Style describes how strokes are drawn.  A single Style applies to all
// strokes; it is read whenever a stroke is merged or rendered.
type Style struct {
	// Color is the stroke color, not premultiplied.
	Color color.NRGBA

	// Width is the stroke width in pixels.
	Width float64
}

// DefaultStyle is an opaque black pen of width 5.
var DefaultStyle = Style{
	Color: color.NRGBA{A: 255},
	Width: 5,
}

// DefaultBackground is the background of a new canvas.
var DefaultBackground color.Color = color.White

// ErrInvalidStyle is returned for styles which cannot be drawn.
var ErrInvalidStyle = errors.New("invalid style")

// Validate checks that the stroke width is positive and finite.
func (s Style) Validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 1) {
		return fmt.Errorf("stroke width %g: %w", s.Width, ErrInvalidStyle)
	}
	return nil
}

// WithColor returns a copy of s with the color replaced.
func (s Style) WithColor(c color.NRGBA) Style {
	s.Color = c
	return s
}

// WithWidth returns a copy of s with the width replaced.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}
