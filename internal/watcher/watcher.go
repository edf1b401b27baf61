// Package watcher watches the config file and re-applies the logging
// section at runtime. Webhook secrets and server settings stay immutable
// for the life of the process; only logging is hot-reloaded.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jgengo/intra-events-telegram/internal/config"
	"github.com/jgengo/intra-events-telegram/internal/logging"
)

// Service watches one config file for changes.
type Service struct {
	path     string
	manager  *logging.Manager
	logger   *slog.Logger
	debounce time.Duration
}

// NewService creates a config watcher for the file at path.
func NewService(path string, manager *logging.Manager, logger *slog.Logger) *Service {
	return &Service{
		path:     path,
		manager:  manager,
		logger:   logger.With(slog.String("component", "config-watcher")),
		debounce: 1 * time.Second,
	}
}

// SetDebounce overrides the default debounce interval (for testing).
func (s *Service) SetDebounce(d time.Duration) {
	s.debounce = d
}

// Start blocks until ctx is canceled. Editors and orchestrators replace
// files rather than writing in place, so the parent directory is watched
// and events are matched against the file name.
func (s *Service) Start(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Warn("fsnotify unavailable, config watching disabled", "error", err)
		return
	}
	defer w.Close() //nolint:errcheck

	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		s.logger.Warn("cannot watch config directory", "dir", dir, "error", err)
		return
	}

	s.logger.Info("config watcher starting", slog.String("path", s.path))

	// Debounce timer coalesces bursts of write events into a single reload.
	// Starts stopped; reset on each relevant event.
	debounceTimer := time.NewTimer(0)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}
	reloadPending := false

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("config watcher stopping")
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(s.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !reloadPending {
				reloadPending = true
			} else if !debounceTimer.Stop() {
				<-debounceTimer.C
			}
			debounceTimer.Reset(s.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Warn("config watcher error", "error", err)

		case <-debounceTimer.C:
			reloadPending = false
			s.reload()
		}
	}
}

// reload re-reads the config file and applies the logging section.
func (s *Service) reload() {
	cfg, err := config.Load(s.path)
	if err != nil {
		s.logger.Warn("config reload failed, keeping current logging settings", "error", err)
		return
	}

	lc := cfg.Logging
	if !logging.ValidLevel(lc.Level) || !logging.ValidFormat(lc.Format) {
		s.logger.Warn("config reload has invalid logging settings",
			slog.String("level", lc.Level),
			slog.String("format", lc.Format),
		)
		return
	}

	s.manager.Reconfigure(logging.Config{
		Level:          lc.Level,
		Format:         lc.Format,
		FilePath:       lc.FilePath,
		FileMaxSizeMB:  lc.FileMaxSizeMB,
		FileMaxFiles:   lc.FileMaxFiles,
		FileMaxAgeDays: lc.FileMaxAgeDays,
	})
	s.logger.Info("logging settings reloaded",
		slog.String("level", lc.Level),
		slog.String("format", lc.Format),
	)
}
