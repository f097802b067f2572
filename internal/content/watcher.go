package content

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs an fsnotify watcher on the file-store directory and refreshes
// the cache when another process rewrites a slot (concurrent writers are
// last-writer-wins, so the cache re-reads rather than reconciles). Bursts of
// events are debounced into a single refresh. Returns when ctx is cancelled.
func Watch(ctx context.Context, cache *Cache, storeRoot string, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(storeRoot); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", storeRoot))

	var refreshTimer *time.Timer
	var refreshCh <-chan time.Time

	scheduleRefresh := func() {
		if refreshTimer == nil {
			refreshTimer = time.NewTimer(200 * time.Millisecond)
			refreshCh = refreshTimer.C
		} else {
			refreshTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if refreshTimer != nil {
				refreshTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-refreshCh:
			logger.Debug("watcher: external change, refreshing cache")
			cache.Refresh(ctx)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Atomic writes land as a rename of a temp file; only slot files
			// matter.
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				scheduleRefresh()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
