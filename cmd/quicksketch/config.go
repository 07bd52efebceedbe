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
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
	"seehuhn.de/go/sketch/export"
)

// Config is the contents of the configuration file.
type Config struct {
	Window WindowConfig `toml:"window"`
	Canvas CanvasConfig `toml:"canvas"`
	Pen    PenConfig    `toml:"pen"`
	Input  InputConfig  `toml:"input"`
	Export ExportConfig `toml:"export"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// CanvasConfig describes the drawing surface.
type CanvasConfig struct {
	Background string `toml:"background"`
}

// PenConfig is the initial line style.
type PenConfig struct {
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
}

// InputConfig controls the processing of touch samples.
type InputConfig struct {
	// Tolerance is the minimum movement, in pixels along either axis,
	// before a new sample extends a stroke.
	Tolerance float64 `toml:"tolerance"`
}

// ExportConfig controls where drawings are saved.
type ExportConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "QuickSketch",
		},
		Canvas: CanvasConfig{Background: "#ffffff"},
		Pen:    PenConfig{Color: "#000000", Width: canvas.DefaultStyle.Width},
		Input:  InputConfig{Tolerance: sketch.DefaultTolerance},
		Export: ExportConfig{Dir: ".", Format: "jpeg"},
	}
}

// LoadConfig reads the configuration file fname.  Settings missing from
// the file keep their default values.  If the file does not exist, the
// default configuration is returned.
func LoadConfig(fname string) (*Config, error) {
	cfg := DefaultConfig()
	if fname == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Validate checks that all settings have valid values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 ||
		c.Window.Width > canvas.MaxSize || c.Window.Height > canvas.MaxSize {
		return fmt.Errorf("window size %dx%d: %w",
			c.Window.Width, c.Window.Height, canvas.ErrInvalidSize)
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	if _, err := c.PenStyle(); err != nil {
		return err
	}
	if math.IsNaN(c.Input.Tolerance) || math.IsInf(c.Input.Tolerance, 0) {
		return fmt.Errorf("invalid tolerance %g", c.Input.Tolerance)
	}
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	return nil
}

// Background returns the canvas background color.
func (c *Config) Background() (color.NRGBA, error) {
	return ParseColor(c.Canvas.Background)
}

// PenStyle returns the line style given by the pen settings.
func (c *Config) PenStyle() (canvas.Style, error) {
	col, err := ParseColor(c.Pen.Color)
	if err != nil {
		return canvas.Style{}, err
	}
	st := canvas.Style{Color: col, Width: c.Pen.Width}
	if err := st.Validate(); err != nil {
		return canvas.Style{}, err
	}
	return st, nil
}

// Tolerance returns the sample tolerance for [sketch.Options].
func (c *Config) Tolerance() float64 {
	if c.Input.Tolerance == 0 {
		// zero means "default" in sketch.Options
		return -1
	}
	return c.Input.Tolerance
}

// ExportFormat returns the file format for saved drawings.
func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Export.Format)
}

// ParseColor parses a color given as "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor is the inverse of [ParseColor].
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
