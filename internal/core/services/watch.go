package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

// watchDebounce coalesces bursts of filesystem events into one rescan.
const watchDebounce = 250 * time.Millisecond

// Watch runs discovery once immediately, then re-runs it whenever the
// project tree changes, sending each fresh result on the returned channel.
// The channel closes when ctx is cancelled.
func (s *DiscoveryService) Watch(ctx context.Context, kind domain.ResourceKind, workingDir string) (<-chan []domain.DiscoveredResource, error) {
	if _, ok := suffixesByKind[kind]; !ok {
		return nil, domain.ErrUnsupportedKind
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addWatchDirs(watcher, workingDir); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan []domain.DiscoveredResource, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		rescan := func() {
			resources, err := s.Discover(ctx, kind, workingDir)
			if err != nil {
				return
			}
			select {
			case out <- resources:
			case <-ctx.Done():
			}
		}
		rescan()

		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				// New directories must be watched too.
				if ev.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = addWatchDirs(watcher, ev.Name)
					}
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					timerC = timer.C
				} else {
					timer.Reset(watchDebounce)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("discovery watch: %v", err)

			case <-timerC:
				timer = nil
				timerC = nil
				rescan()
			}
		}
	}()

	return out, nil
}

// addWatchDirs registers root and every non-skipped directory below it.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] || dependencyDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			logger.Debug("discovery watch add %s: %v", path, err)
		}
		return nil
	})
}
