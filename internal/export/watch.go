package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch exports once, then again every time the source mesh is written or
// recreated, until ctx is cancelled. Every export result, successful or not,
// is passed to done. Export errors do not stop the watch.
func (e *Exporter) Watch(ctx context.Context, done func(*Result, error)) error {
	mesh := e.cfg.Source.Mesh
	if mesh == "" {
		return fmt.Errorf("%w: no source mesh given", ErrSelectionMissing)
	}
	target := filepath.Clean(mesh)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors commonly save by writing a new file and
	// renaming it over the old one, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}
	e.log.Info("watching source mesh", zap.String("mesh", target))

	done(e.Run())

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

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			e.log.Debug("source mesh changed", zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(e.Debounce)
			} else {
				timer.Reset(e.Debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.log.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			done(e.Run())
		}
	}
}
