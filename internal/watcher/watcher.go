// Package watcher reports files dropped into a directory once they have
// stopped changing.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options configures Watch.
type Options struct {
	// Debounce is how long a path must be quiet before it is handed over.
	Debounce time.Duration

	// Filter selects the paths of interest. Nil accepts every file.
	Filter func(path string) bool

	Logger *slog.Logger
}

// Watch calls handle with the files created or written in dir, batched and
// sorted, after Debounce has passed without further events. Files that no
// longer exist when the timer fires are dropped. Watch blocks until ctx is
// done and returns nil, or returns the error that stopped the watcher.
//
// handle runs on the watch goroutine; events arriving meanwhile are queued
// by fsnotify and debounced afterwards.
func Watch(ctx context.Context, dir string, opts Options, handle func(paths []string)) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("watching input directory", "dir", dir, "debounce", opts.Debounce)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]bool)
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(opts.Debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(opts.Debounce)
		timerC = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timerC:
			timerC = nil
			var ready []string
			for path := range pending {
				if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
					ready = append(ready, path)
				}
			}
			clear(pending)
			if len(ready) > 0 {
				slices.Sort(ready)
				handle(ready)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "dir", dir, "error", err)

		case evt, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !shouldTrigger(evt, opts.Filter) {
				continue
			}
			logger.Debug("input event", "path", evt.Name, "op", evt.Op.String())
			pending[evt.Name] = true
			resetTimer()
		}
	}
}

func shouldTrigger(evt fsnotify.Event, filter func(string) bool) bool {
	if strings.TrimSpace(evt.Name) == "" {
		return false
	}
	if evt.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	if strings.HasPrefix(filepath.Base(evt.Name), ".") {
		return false
	}
	return filter == nil || filter(evt.Name)
}
