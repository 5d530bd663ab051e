// fen2eps - tools for chess diagram font description files
// Copyright (C) 2003-2026  Dirk Baechle <dl9obn@darc.de>
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

// Package watch reruns a task whenever the FED files in a directory
// change.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDelay is the default time to wait for further changes before
// the task is run.
const DefaultDelay = 500 * time.Millisecond

// Options configure a [Watcher].
type Options struct {
	// Delay is the quiet period after the last change, before the task is
	// run.  Bursts of changes within this period trigger a single run.
	// If this is zero, [DefaultDelay] is used.
	Delay time.Duration

	// Ext is the file name extension of the watched files.
	// If this is empty, ".fed" is used.
	Ext string

	Logger *zap.Logger
}

// Watcher observes a directory and calls a task when files change.
type Watcher struct {
	dir     string
	task    func(context.Context) error
	delay   time.Duration
	ext     string
	logger  *zap.Logger
}

// New creates a watcher for dir.  No system resources are allocated until
// [Watcher.Run] is called.
func New(dir string, task func(context.Context) error, opt *Options) *Watcher {
	if opt == nil {
		opt = &Options{}
	}
	w := &Watcher{
		dir:    dir,
		task:   task,
		delay:  opt.Delay,
		ext:    opt.Ext,
		logger: opt.Logger,
	}
	if w.delay <= 0 {
		w.delay = DefaultDelay
	}
	if w.ext == "" {
		w.ext = ".fed"
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	return w
}

// Run watches the directory until ctx is cancelled.  Errors returned by
// the task are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching directory", zap.String("dir", w.dir))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file changed",
				zap.String("file", event.Name), zap.Stringer("op", event.Op))
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := w.task(ctx); err != nil {
				w.logger.Error("task failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), w.ext) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
