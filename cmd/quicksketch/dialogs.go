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
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
)

// dialog is a modal overlay.  While a dialog is open, pointer input does
// not reach the drawing.
type dialog interface {
	// Update processes keyboard input.  It returns true once the dialog
	// is finished.
	Update() (done bool, err error)

	Draw(screen *ebiten.Image)
}

var (
	shadeColor  = color.RGBA{0, 0, 0, 120}
	panelColor  = color.RGBA{30, 30, 30, 240}
	markerColor = color.RGBA{200, 200, 200, 255}
)

// repeated reports whether k was just pressed or is being held down long
// enough to repeat.
func repeated(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 30 && d%3 == 0)
}

// step returns the increment for arrow keys: 16 with shift, 1 without.
func step() int {
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		return 16
	}
	return 1
}

// drawPanel shades the screen and draws an empty panel of the given size
// in the middle.  It returns the top-left corner of the panel.
func drawPanel(screen *ebiten.Image, w, h int) image.Point {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), shadeColor, false)
	x, y := (sw-w)/2, (sh-h)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, false)
	return image.Pt(x, y)
}

// colorDialog edits the four channels of the pen color.
type colorDialog struct {
	ed *sketch.StyleEditor
	ch sketch.Channel
}

func newColorDialog(t sketch.StyleTarget) *colorDialog {
	return &colorDialog{ed: sketch.NewStyleEditor(t), ch: sketch.Red}
}

var channelNames = [...]string{
	sketch.Alpha: "alpha",
	sketch.Red:   "red",
	sketch.Green: "green",
	sketch.Blue:  "blue",
}

func (d *colorDialog) Update() (bool, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return true, nil
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return true, d.ed.Commit()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		d.ch = (d.ch + 3) % 4
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyTab):
		d.ch = (d.ch + 1) % 4
	case repeated(ebiten.KeyArrowRight):
		d.adjust(step())
	case repeated(ebiten.KeyArrowLeft):
		d.adjust(-step())
	}
	return false, nil
}

func (d *colorDialog) adjust(delta int) {
	v := int(d.ed.Channel(d.ch)) + delta
	d.ed.SetChannel(d.ch, uint8(min(max(v, 0), 255)))
}

func (d *colorDialog) Draw(screen *ebiten.Image) {
	pos := drawPanel(screen, 300, 170)
	ebitenutil.DebugPrintAt(screen, "Pen color", pos.X+20, pos.Y+12)
	for ch := sketch.Alpha; ch <= sketch.Blue; ch++ {
		y := pos.Y + 40 + 20*int(ch)
		if ch == d.ch {
			ebitenutil.DebugPrintAt(screen, ">", pos.X+20, y)
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%-5s %3d", channelNames[ch], d.ed.Channel(ch)), pos.X+34, y)
	}
	vector.DrawFilledRect(screen, float32(pos.X+190), float32(pos.Y+40), 80, 76, markerColor, false)
	vector.DrawFilledRect(screen, float32(pos.X+190), float32(pos.Y+40), 80, 76, d.ed.Pending().Color, false)
	ebitenutil.DebugPrintAt(screen, "arrows: change   enter: ok   esc: cancel", pos.X+20, pos.Y+140)
}

// widthDialog edits the pen width and shows a sample stroke.
type widthDialog struct {
	ed      *sketch.StyleEditor
	preview *ebiten.Image
}

const maxPenWidth = 100

func newWidthDialog(t sketch.StyleTarget) *widthDialog {
	d := &widthDialog{
		ed:      sketch.NewStyleEditor(t),
		preview: ebiten.NewImage(sketch.PreviewWidth, sketch.PreviewHeight),
	}
	d.ed.OnChange = func(st canvas.Style) {
		d.preview.WritePixels(sketch.WidthPreview(st).Pix)
	}
	d.preview.WritePixels(sketch.WidthPreview(d.ed.Pending()).Pix)
	return d
}

func (d *widthDialog) Update() (bool, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		d.preview.Deallocate()
		return true, nil
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		d.preview.Deallocate()
		return true, d.ed.Commit()
	case repeated(ebiten.KeyArrowRight), repeated(ebiten.KeyArrowUp):
		d.adjust(float64(step()))
	case repeated(ebiten.KeyArrowLeft), repeated(ebiten.KeyArrowDown):
		d.adjust(-float64(step()))
	}
	return false, nil
}

func (d *widthDialog) adjust(delta float64) {
	w := d.ed.Pending().Width + delta
	d.ed.SetWidth(min(max(w, 1), maxPenWidth))
}

func (d *widthDialog) Draw(screen *ebiten.Image) {
	pos := drawPanel(screen, sketch.PreviewWidth+40, sketch.PreviewHeight+80)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Pen width: %g", d.ed.Pending().Width), pos.X+20, pos.Y+12)

	px, py := float32(pos.X+20), float32(pos.Y+36)
	vector.DrawFilledRect(screen, px, py, sketch.PreviewWidth, sketch.PreviewHeight, color.White, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(d.preview, op)

	ebitenutil.DebugPrintAt(screen, "arrows: change   enter: ok   esc: cancel",
		pos.X+20, pos.Y+sketch.PreviewHeight+50)
}

// eraseDialog asks for confirmation before the drawing is erased.
type eraseDialog struct {
	c *sketch.ConfirmErase
}

func (d *eraseDialog) Update() (bool, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		d.c.Confirm()
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		d.c.Cancel()
	}
	return !d.c.Pending(), nil
}

func (d *eraseDialog) Draw(screen *ebiten.Image) {
	pos := drawPanel(screen, 300, 80)
	ebitenutil.DebugPrintAt(screen, "Erase the drawing?", pos.X+20, pos.Y+16)
	ebitenutil.DebugPrintAt(screen, "y: erase   n: keep", pos.X+20, pos.Y+46)
}
