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

package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"seehuhn.de/go/sketch"
)

// Result reports the outcome of a save job.
type Result struct {
	ID   string // the job id returned by [Saver.Save]
	Path string // the file written, empty on failure
	Err  error
}

// Saver writes snapshots to files in a directory.
//
// Snapshots must be copies which are not modified after they are passed
// to the Saver, for example images returned by [sketch.Surface.ExportSnapshot].
//
// The exported fields may be changed between calls to Save, from the
// goroutine which calls Save.  Jobs which are already running are not
// affected.
type Saver struct {
	Dir    string
	Format Format

	// Now returns the time used for file names.  If nil, time.Now is used.
	Now func() time.Time

	results chan Result
	wg      sync.WaitGroup
}

// NewSaver returns a Saver which writes files of format f into dir.
func NewSaver(dir string, f Format) *Saver {
	return &Saver{
		Dir:     dir,
		Format:  f,
		results: make(chan Result, 16),
	}
}

// Results returns the channel on which the outcomes of [Saver.Save] jobs
// are delivered.
func (s *Saver) Results() <-chan Result {
	return s.results
}

// Save starts writing snap in the background and returns the job id.
// The outcome is delivered on the Results channel.  If ctx is cancelled
// before the result has been delivered, the result is dropped.
func (s *Saver) Save(ctx context.Context, snap *image.RGBA) string {
	id := uuid.NewString()
	dir, f, now := s.Dir, s.Format, s.now()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fname, err := write(ctx, dir, FileName(now, f), f, snap)
		if err != nil {
			sketch.Logger().Warn("save failed", "job", id, "error", err)
		} else {
			sketch.Logger().Info("saved", "job", id, "file", fname)
		}
		select {
		case s.results <- Result{ID: id, Path: fname, Err: err}:
		case <-ctx.Done():
		}
	}()
	return id
}

// SaveNow writes snap and returns the name of the file written.
func (s *Saver) SaveNow(ctx context.Context, snap *image.RGBA) (string, error) {
	return write(ctx, s.Dir, FileName(s.now(), s.Format), s.Format, snap)
}

// Wait blocks until all background jobs have finished.
func (s *Saver) Wait() {
	s.wg.Wait()
}

func (s *Saver) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func write(ctx context.Context, dir, name string, format Format, snap *image.RGBA) (fname string, err error) {
	if snap == nil || snap.Bounds().Empty() {
		return "", errors.New("empty image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	f, fname, err := create(dir, name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(fname)
			fname = ""
		}
	}()

	err = Encode(f, snap, format)
	if err != nil {
		return fname, fmt.Errorf("%s: %w", fname, err)
	}
	return fname, nil
}

// create opens a new file with the given name.  If the file exists, a
// numeric suffix is added to the name.
func create(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		fname := filepath.Join(dir, name)
		f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if !errors.Is(err, fs.ErrExist) {
			return f, fname, err
		}
		name = fmt.Sprintf("%s-%d%s", base, i, ext)
	}
}
