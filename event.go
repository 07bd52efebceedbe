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

import "fmt"

// Kind is the phase of a touch contact reported by an input event.
type Kind uint8

// These are the possible event kinds.
const (
	Start Kind = iota + 1 // a contact touches down
	Move                  // an active contact moves
	End                   // a contact is lifted or cancelled
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Move:
		return "move"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is one input sample for a touch contact.  Input is delivered in
// batches of events, where a batch may contain samples for several
// contacts which moved at the same time.
type Event struct {
	Kind Kind
	ID   int     // contact id, stable while the contact is down
	X, Y float64 // position in canvas pixels
}

func (e Event) String() string {
	return fmt.Sprintf("%s %d (%g,%g)", e.Kind, e.ID, e.X, e.Y)
}
