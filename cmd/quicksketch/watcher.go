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
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long the config file must be quiet before it is
// read again.
const reloadDelay = 300 * time.Millisecond

// configWatcher reloads the configuration file when it changes.
type configWatcher struct {
	watcher *fsnotify.Watcher
	fname   string
	delay   time.Duration
	onLoad  func(*Config)
	onError func(error)
	stop    chan struct{}
	done    chan struct{}
}

// watchConfig starts watching the configuration file fname.  After every
// change, the file is read again and passed to onLoad.  Read and parse
// errors are passed to onError and the previous configuration stays in
// effect.  Both callbacks run on the watcher goroutine.
func watchConfig(fname string, onLoad func(*Config), onError func(error)) (*configWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often save by renaming a new file into place, so the
	// directory is watched instead of the file.
	if err := w.Add(filepath.Dir(fname)); err != nil {
		w.Close()
		return nil, err
	}

	cw := &configWatcher{
		watcher: w,
		fname:   fname,
		delay:   reloadDelay,
		onLoad:  onLoad,
		onError: onError,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

// Close stops the watcher and waits for the watcher goroutine to exit.
func (cw *configWatcher) Close() {
	close(cw.stop)
	<-cw.done
}

func (cw *configWatcher) loop() {
	defer close(cw.done)
	defer cw.watcher.Close()

	abs, _ := filepath.Abs(cw.fname)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-cw.stop:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if name, _ := filepath.Abs(ev.Name); name != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(cw.delay)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			cfg, err := LoadConfig(cw.fname)
			if err != nil {
				cw.onError(err)
				continue
			}
			cw.onLoad(cfg)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.onError(err)
		}
	}
}
