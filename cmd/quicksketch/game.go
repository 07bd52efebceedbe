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
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/export"
)

// statusDuration is how long status messages stay on screen.
const statusDuration = 4 * time.Second

// game implements ebiten.Game.
type game struct {
	ctx    context.Context
	logger *slog.Logger

	surf   *sketch.Surface
	frame  *image.RGBA
	screen *ebiten.Image
	fresh  bool // screen needs to be updated from frame

	width, height int // window size reported by Layout

	tracker *tracker
	poller  poller

	dlg   dialog
	erase *sketch.ConfirmErase
	saver *export.Saver

	configs chan *Config
	cfg     *Config

	status      string
	statusUntil time.Time
}

func newGame(ctx context.Context, cfg *Config, logger *slog.Logger) (*game, error) {
	bg, err := cfg.Background()
	if err != nil {
		return nil, err
	}
	st, err := cfg.PenStyle()
	if err != nil {
		return nil, err
	}
	f, err := cfg.ExportFormat()
	if err != nil {
		return nil, err
	}

	g := &game{
		ctx:     ctx,
		logger:  logger,
		tracker: newTracker(),
		saver:   export.NewSaver(cfg.Export.Dir, f),
		configs: make(chan *Config, 1),
		cfg:     cfg,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	g.surf, err = sketch.New(&sketch.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: bg,
		Style:      &st,
		Tolerance:  cfg.Tolerance(),
	})
	if err != nil {
		return nil, err
	}
	g.erase = sketch.NewConfirmErase(g.surf)
	g.allocate()
	return g, nil
}

// allocate creates the frame buffers for the current surface size.
func (g *game) allocate() {
	b := g.surf.Bounds()
	g.frame = image.NewRGBA(b)
	if g.screen != nil {
		g.screen.Deallocate()
	}
	g.screen = ebiten.NewImage(b.Dx(), b.Dy())
	g.fresh = true
}

// Reload hands a new configuration to the game.  It can be called from any
// goroutine; the configuration is applied during the next Update.
func (g *game) Reload(cfg *Config) {
	for {
		select {
		case g.configs <- cfg:
			return
		default:
		}
		// drop a configuration which has not been applied yet
		select {
		case <-g.configs:
		default:
		}
	}
}

func (g *game) applyConfig(cfg *Config) {
	st, err := cfg.PenStyle()
	if err == nil {
		err = g.surf.SetStyle(st)
	}
	if err != nil {
		g.logger.Warn("config not applied", "error", err)
		return
	}
	if f, err := cfg.ExportFormat(); err == nil {
		g.saver.Format = f
	}
	g.saver.Dir = cfg.Export.Dir

	if bg, err := cfg.Background(); err == nil && !sameColor(bg, g.surf.Background()) {
		g.logger.Info("background changes take effect after a restart")
	}
	if cfg.Input.Tolerance != g.cfg.Input.Tolerance {
		g.logger.Info("tolerance changes take effect after a restart")
	}
	g.cfg = cfg
	g.setStatus("configuration reloaded")
}

// sameColor reports whether a and b are the same color.
func sameColor(a, b color.Color) bool {
	r0, g0, b0, a0 := a.RGBA()
	r1, g1, b1, a1 := b.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

func (g *game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(statusDuration)
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	select {
	case cfg := <-g.configs:
		g.applyConfig(cfg)
	default:
	}

	select {
	case res := <-g.saver.Results():
		if res.Err != nil {
			g.setStatus(fmt.Sprintf("save failed: %v", res.Err))
		} else {
			g.setStatus("saved " + filepath.Base(res.Path))
		}
	default:
	}

	if w, h := g.width, g.height; w != g.surf.Bounds().Dx() || h != g.surf.Bounds().Dy() {
		// Resizing erases the drawing.  Contacts which are down keep
		// their strokes.
		if err := g.surf.Resize(w, h); err != nil {
			g.logger.Warn("resize failed", "width", w, "height", h, "error", err)
		} else {
			g.allocate()
		}
	}

	if g.dlg != nil {
		g.surf.Handle(g.tracker.Frame(nil))
		done, err := g.dlg.Update()
		if err != nil {
			g.setStatus(err.Error())
		}
		if done {
			g.dlg = nil
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.dlg = newColorDialog(g.surf)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.dlg = newWidthDialog(g.surf)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		if g.erase.Request() {
			g.dlg = &eraseDialog{c: g.erase}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		id := g.saver.Save(g.ctx, g.surf.ExportSnapshot())
		g.logger.Debug("saving", "job", id)
		g.setStatus("saving ...")
	}

	g.surf.Handle(g.tracker.Frame(g.poller.Poll()))
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	if g.fresh || g.surf.NeedsRepaint() {
		g.surf.Render(g.frame)
		g.screen.WritePixels(g.frame.Pix)
		g.fresh = false
	}
	screen.DrawImage(g.screen, nil)

	if g.dlg != nil {
		g.dlg.Draw(screen)
	}
	if g.status != "" && time.Now().Before(g.statusUntil) {
		ebitenutil.DebugPrintAt(screen, g.status, 8, screen.Bounds().Dy()-20)
	}
}

// Layout implements ebiten.Game.  The drawing always has the size of the
// window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
