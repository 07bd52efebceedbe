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

// Package export writes snapshots of a sketch surface to image files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output file format.
type Format uint8

// The supported output formats.
const (
	JPEG Format = iota
	PNG
	BMP
	TIFF
	PDF
)

// ErrUnknownFormat is returned for format names which are not recognised.
var ErrUnknownFormat = errors.New("unknown format")

// JPEGQuality is the quality setting used for JPEG output.
const JPEGQuality = 90

// ParseFormat returns the format with the given name or file name
// extension.  Case is ignored and a leading dot is allowed.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "jpeg", "jpg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	case "pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	case PDF:
		return "PDF"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Ext returns the file name extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return "jpg"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tif"
	case PDF:
		return "pdf"
	default:
		return "bin"
	}
}

// FileName returns the name used for a drawing saved at time t.
func FileName(t time.Time, f Format) string {
	return fmt.Sprintf("QuickSketch-%d.%s", t.UnixMilli(), f.Ext())
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PDF:
		return encodePDF(w, img)
	default:
		return fmt.Errorf("%s: %w", f, ErrUnknownFormat)
	}
}

// encodePDF writes a single-page PDF file, where the page has the size of
// the image (one point per pixel) and the image fills the whole page.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	// "L" would swap the page dimensions
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("sketch", opt, buf)
	doc.ImageOptions("sketch", 0, 0, wd, ht, false, opt, 0, "")

	return doc.Output(w)
}
