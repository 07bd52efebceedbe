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

// Command quicksketch is a small sketching program.  Strokes are drawn with
// the mouse or with any number of fingers on a touch screen.
//
// Keys:
//
//	c  change the pen color
//	w  change the pen width
//	e  erase the drawing
//	s  save the drawing
//
// Settings are read from a TOML file given by -config, which is reloaded
// whenever it changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/sketch"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "configuration file (TOML)")
	verbose := flag.Bool("v", false, "log debug messages")
	outDir := flag.String("out", "", "directory for saved drawings")
	format := flag.String("format", "", "file format for saved drawings (jpeg, png, bmp, tiff, pdf)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)

	// command line settings take precedence over the config file
	override := func(cfg *Config) error {
		if *outDir != "" {
			cfg.Export.Dir = *outDir
		}
		if *format != "" {
			cfg.Export.Format = *format
		}
		return cfg.Validate()
	}

	cfg, err := LoadConfig(*configPath)
	if err == nil {
		err = override(cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := newGame(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *configPath != "" {
		w, err := watchConfig(*configPath,
			func(cfg *Config) {
				if err := override(cfg); err != nil {
					logger.Warn("config not reloaded", "error", err)
					return
				}
				g.Reload(cfg)
			},
			func(err error) {
				logger.Warn("config not reloaded", "error", err)
			})
		if err != nil {
			logger.Warn("cannot watch config file", "file", *configPath, "error", err)
		} else {
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(g)

	// let running save jobs finish
	go func() {
		for range g.saver.Results() {
		}
	}()
	g.saver.Wait()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
