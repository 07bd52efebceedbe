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
	"errors"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/sketch/canvas"
)

func TestColorEditor(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	ed := NewStyleEditor(s)

	var previews []canvas.Style
	ed.OnChange = func(st canvas.Style) { previews = append(previews, st) }

	if ed.Channel(Alpha) != 255 || ed.Channel(Red) != 0 {
		t.Fatal("editor not seeded from the surface")
	}
	ed.SetChannel(Red, 200)
	ed.SetChannel(Green, 100)
	ed.SetChannel(Blue, 50)
	ed.SetChannel(Alpha, 128)
	ed.SetChannel(Channel(9), 1)

	want := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	if ed.Pending().Color != want {
		t.Errorf("Pending().Color = %v, want %v", ed.Pending().Color, want)
	}
	if len(previews) != 4 {
		t.Errorf("%d change notifications, want 4", len(previews))
	}
	if s.Style() != canvas.DefaultStyle {
		t.Error("surface changed before Commit")
	}

	// the width is changed elsewhere while the dialog is open
	if err := s.SetStyle(s.Style().WithWidth(12)); err != nil {
		t.Fatal(err)
	}
	if err := ed.Commit(); err != nil {
		t.Fatal(err)
	}
	got := s.Style()
	if got.Color != want || got.Width != 12 {
		t.Errorf("Style() = %v, want color %v and width 12", got, want)
	}
}

func TestWidthEditor(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	ed := NewStyleEditor(s)
	ed.SetWidth(20)

	red := color.NRGBA{R: 255, A: 255}
	if err := s.SetStyle(s.Style().WithColor(red)); err != nil {
		t.Fatal(err)
	}
	if err := ed.Commit(); err != nil {
		t.Fatal(err)
	}
	if got := s.Style(); got.Width != 20 || got.Color != red {
		t.Errorf("Style() = %v, want red with width 20", got)
	}

	bad := NewStyleEditor(s)
	bad.SetWidth(0)
	if err := bad.Commit(); !errors.Is(err, canvas.ErrInvalidStyle) {
		t.Errorf("Commit: err = %v, want ErrInvalidStyle", err)
	}
	if s.Style().Width != 20 {
		t.Error("invalid width was applied")
	}
}

type countingEraser int

func (c *countingEraser) Clear() { *c++ }

func TestConfirmErase(t *testing.T) {
	var e countingEraser
	g := NewConfirmErase(&e)

	if !g.Request() {
		t.Fatal("first request was refused")
	}
	if g.Request() {
		t.Error("second request while pending was accepted")
	}
	if !g.Pending() {
		t.Error("no confirmation pending")
	}
	g.Cancel()
	if e != 0 || g.Pending() {
		t.Error("Cancel erased or kept the request")
	}

	g.Confirm()
	if e != 0 {
		t.Error("Confirm without a request erased")
	}

	g.Request()
	g.Confirm()
	if e != 1 {
		t.Errorf("%d erasures, want 1", e)
	}
	if !g.Request() {
		t.Error("request after Confirm was refused")
	}
}

func TestConfirmEraseSurface(t *testing.T) {
	s := newTestSurface(t, 60, 60)
	s.Start(1, 10, 30)
	s.Move(1, 50, 30)
	s.End(1)

	g := NewConfirmErase(s)
	g.Request()
	g.Confirm()
	if ink(s.ExportSnapshot()) != 0 {
		t.Error("surface not erased")
	}
}

func TestWidthPreview(t *testing.T) {
	st := canvas.Style{Color: color.NRGBA{B: 255, A: 255}, Width: 10}
	img := WidthPreview(st)

	if img.Bounds().Dx() != PreviewWidth || img.Bounds().Dy() != PreviewHeight {
		t.Fatalf("preview size %v", img.Bounds())
	}
	if got := img.RGBAAt(200, 50); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("line pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(200, 10); got.A != 0 {
		t.Errorf("background pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(390, 50); got.A != 0 {
		t.Errorf("pixel beyond the line end = %v, want transparent", got)
	}

	// wider pens give more ink
	thin := WidthPreview(st.WithWidth(2))
	if alphaSum(thin) >= alphaSum(img) {
		t.Error("thin preview not thinner")
	}
}

func alphaSum(img *image.RGBA) int {
	sum := 0
	for y := range PreviewHeight {
		for x := range PreviewWidth {
			sum += int(img.RGBAAt(x, y).A)
		}
	}
	return sum
}
