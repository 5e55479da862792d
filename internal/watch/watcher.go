// Package watch reruns generation when files in the data directory change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RegenerateFunc performs one full regeneration.
type RegenerateFunc func(ctx context.Context) error

// Watch starts an fsnotify watcher on dir and calls regen once changes to
// files ending in suffix have been quiet for debounce. It blocks until ctx
// is cancelled or dir itself goes away.
//
// Only direct children of dir are watched, matching what gets indexed.
// Regeneration errors are logged and watching continues.
func Watch(ctx context.Context, dir, suffix string, debounce time.Duration, logger *slog.Logger, regen RegenerateFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	dir = filepath.Clean(dir)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}

	logger.Info("watcher: started", slog.String("dir", dir), slog.Duration("debounce", debounce))

	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			if err := regen(ctx); err != nil {
				logger.Error("watcher: regenerate failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) == dir && ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return fmt.Errorf("watch: %s was removed", dir)
			}
			if !Relevant(ev, suffix) {
				continue
			}
			logger.Debug("watcher: change",
				slog.String("path", filepath.Base(ev.Name)),
				slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// Relevant reports whether ev can change the set or order of indexed files.
// Chmod alone never does.
func Relevant(ev fsnotify.Event, suffix string) bool {
	if !strings.HasSuffix(ev.Name, suffix) {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
