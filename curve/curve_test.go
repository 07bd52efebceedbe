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

package curve

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestAppendMidpoint(t *testing.T) {
	var c Curve
	c.MoveTo(vec.Vec2{X: 10, Y: 10})
	Append(&c, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 25, Y: 10})

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	var cmds []path.Command
	var pts [][]vec.Vec2
	for cmd, p := range c.Path() {
		cmds = append(cmds, cmd)
		pts = append(pts, append([]vec.Vec2(nil), p...))
	}
	if len(cmds) != 2 || cmds[0] != path.CmdMoveTo || cmds[1] != path.CmdQuadTo {
		t.Fatalf("unexpected commands %v", cmds)
	}
	wantCtrl := vec.Vec2{X: 10, Y: 10}
	wantEnd := vec.Vec2{X: 17.5, Y: 10}
	if pts[1][0] != wantCtrl || pts[1][1] != wantEnd {
		t.Errorf("quad = %v, want [%v %v]", pts[1], wantCtrl, wantEnd)
	}

	if cur := c.data.Coords[len(c.data.Coords)-1]; cur != wantEnd {
		t.Errorf("pen at %v, want %v", cur, wantEnd)
	}
}

func TestAppendChain(t *testing.T) {
	samples := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 20, Y: 0},
		{X: 20, Y: 20},
		{X: 0, Y: 20},
	}

	var c Curve
	c.MoveTo(samples[0])
	for i := 1; i < len(samples); i++ {
		Append(&c, samples[i-1], samples[i])
	}
	if c.Len() != len(samples)-1 {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(samples)-1)
	}

	// every segment is controlled by the previous sample
	i := 0
	for cmd, p := range c.Path() {
		if cmd != path.CmdQuadTo {
			continue
		}
		if p[0] != samples[i] {
			t.Errorf("segment %d: control %v, want %v", i, p[0], samples[i])
		}
		mid := samples[i].Add(samples[i+1]).Mul(0.5)
		if p[1] != mid {
			t.Errorf("segment %d: end %v, want %v", i, p[1], mid)
		}
		i++
	}
}

func TestResetKeepsStorage(t *testing.T) {
	var c Curve
	c.MoveTo(vec.Vec2{X: 1, Y: 2})
	for i := range 10 {
		c.QuadTo(vec.Vec2{X: float64(i), Y: 0}, vec.Vec2{X: float64(i), Y: 1})
	}
	capCmds := cap(c.data.Cmds)

	c.Reset()
	if !c.IsEmpty() || c.Len() != 0 {
		t.Fatalf("curve not empty after Reset")
	}
	if cap(c.data.Cmds) != capCmds {
		t.Errorf("Reset released storage: cap %d, want %d", cap(c.data.Cmds), capCmds)
	}
	if len(c.data.Coords) != 0 {
		t.Error("Reset left a pen position")
	}
}

func TestMoveToDiscards(t *testing.T) {
	var c Curve
	c.MoveTo(vec.Vec2{X: 0, Y: 0})
	Append(&c, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 30, Y: 0})
	c.MoveTo(vec.Vec2{X: 5, Y: 5})

	if c.Len() != 0 {
		t.Errorf("Len() = %d after MoveTo, want 0", c.Len())
	}
	n := 0
	for range c.Path() {
		n++
	}
	if n != 1 {
		t.Errorf("path has %d commands, want 1", n)
	}
}

func TestClone(t *testing.T) {
	var c Curve
	c.MoveTo(vec.Vec2{X: 0, Y: 0})
	Append(&c, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 30, Y: 0})

	d := c.Clone()
	c.Reset()

	if d.Len() != 1 {
		t.Fatalf("clone Len() = %d, want 1", d.Len())
	}
	if len(d.data.Cmds) != 2 {
		t.Errorf("clone lost commands: %v", d.data.Cmds)
	}

	var nilCurve *Curve
	if nilCurve.Clone() != nil || nilCurve.Len() != 0 || !nilCurve.IsEmpty() {
		t.Error("nil curve not handled")
	}
}

func TestQuadToOnEmpty(t *testing.T) {
	var c Curve
	c.QuadTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2})
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if c.data.Cmds[0] != path.CmdMoveTo {
		t.Errorf("first command %v, want MoveTo", c.data.Cmds[0])
	}
}
