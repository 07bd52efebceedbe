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

// Package curve holds the geometry of a single freehand stroke.
//
// A [Curve] is a move-to followed by zero or more quadratic Bézier
// segments.  Samples are turned into segments by [Append], which uses the
// previous sample as control point and ends the segment half way to the new
// sample.  The resulting curve trails the input by half a sample interval
// and has no corners at the sample positions.
package curve

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Curve is an ordered, mutable sequence of path segments describing one
// stroke.  The zero value is an empty curve, ready to use.
//
// A Curve only ever contains a single subpath: calling MoveTo on a
// non-empty curve discards the existing segments first.
type Curve struct {
	data path.Data
	segs int
}

// MoveTo discards all segments and places the pen at p without drawing.
func (c *Curve) MoveTo(p vec.Vec2) {
	c.Reset()
	c.data.Cmds = append(c.data.Cmds, path.CmdMoveTo)
	c.data.Coords = append(c.data.Coords, p)
}

// QuadTo appends a quadratic Bézier segment from the current pen position
// to end, using ctrl as the control point.
//
// If the curve is empty, the pen is first moved to ctrl.
func (c *Curve) QuadTo(ctrl, end vec.Vec2) {
	if len(c.data.Cmds) == 0 {
		c.MoveTo(ctrl)
	}
	c.data.Cmds = append(c.data.Cmds, path.CmdQuadTo)
	c.data.Coords = append(c.data.Coords, ctrl, end)
	c.segs++
}

// Reset empties the curve.  The underlying storage is kept for reuse.
func (c *Curve) Reset() {
	c.data.Cmds = c.data.Cmds[:0]
	c.data.Coords = c.data.Coords[:0]
	c.segs = 0
}

// Len returns the number of quadratic segments in the curve.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return c.segs
}

// IsEmpty reports whether the curve has neither a pen position nor segments.
func (c *Curve) IsEmpty() bool {
	return c == nil || len(c.data.Cmds) == 0
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}
	return &Curve{
		data: path.Data{
			Cmds:   slices.Clone(c.data.Cmds),
			Coords: slices.Clone(c.data.Coords),
		},
		segs: c.segs,
	}
}

// Path returns an iterator over the segments of the curve.
// The curve must not be modified while the iterator is in use.
func (c *Curve) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if c == nil {
			return
		}
		k := 0
		for _, cmd := range c.data.Cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			}
			if !yield(cmd, c.data.Coords[k:k+n]) {
				return
			}
			k += n
		}
	}
}

// Append extends c by one smoothed segment for a new input sample.
//
// from is the previously accepted sample and to is the new one.  The segment
// uses from as its control point and ends at the midpoint of from and to.
func Append(c *Curve, from, to vec.Vec2) {
	mid := from.Add(to).Mul(0.5)
	c.QuadTo(from, mid)
}
