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

package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/sketch"
)

// mouseID is the contact id used for the mouse pointer.  Touch contacts
// use the (non-negative) ebiten touch ids.
const mouseID = -1

// pointer is the position of one contact in the current frame.
type pointer struct {
	ID   int
	X, Y float64
}

// tracker turns per-frame pointer positions into touch events.
type tracker struct {
	down   map[int]pointer
	events []sketch.Event
	gone   []int
}

func newTracker() *tracker {
	return &tracker{down: make(map[int]pointer)}
}

// Frame compares the pointers seen in this frame with the previous frame
// and returns the resulting events.  New pointers start a contact, moved
// pointers generate Move events and pointers which have disappeared end
// their contact.  The returned slice is only valid until the next call.
func (t *tracker) Frame(pts []pointer) []sketch.Event {
	t.events = t.events[:0]

	t.gone = t.gone[:0]
	for id := range t.down {
		if !slices.ContainsFunc(pts, func(p pointer) bool { return p.ID == id }) {
			t.gone = append(t.gone, id)
		}
	}
	slices.Sort(t.gone)
	for _, id := range t.gone {
		delete(t.down, id)
		t.events = append(t.events, sketch.Event{Kind: sketch.End, ID: id})
	}

	for _, p := range pts {
		old, ok := t.down[p.ID]
		switch {
		case !ok:
			t.events = append(t.events, sketch.Event{Kind: sketch.Start, ID: p.ID, X: p.X, Y: p.Y})
		case old.X != p.X || old.Y != p.Y:
			t.events = append(t.events, sketch.Event{Kind: sketch.Move, ID: p.ID, X: p.X, Y: p.Y})
		}
		t.down[p.ID] = p
	}
	return t.events
}

// Down returns the number of contacts currently down.
func (t *tracker) Down() int {
	return len(t.down)
}

// poller reads the pointer positions from ebiten.
type poller struct {
	touchIDs []ebiten.TouchID
	pts      []pointer
}

// Poll returns the positions of all touches and, while the left button
// is pressed, of the mouse.  The returned slice is only valid until the
// next call.
func (p *poller) Poll() []pointer {
	p.pts = p.pts[:0]

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, tid := range p.touchIDs {
		x, y := ebiten.TouchPosition(tid)
		p.pts = append(p.pts, pointer{ID: int(tid), X: float64(x), Y: float64(y)})
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.pts = append(p.pts, pointer{ID: mouseID, X: float64(x), Y: float64(y)})
	}
	return p.pts
}
