// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/hazard-keeper/internal/importer"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
)

// Sub-directories of the drop directory.
const (
	HazardsDir   = "hazards"
	PersonnelDir = "personnel"
	ProcessedDir = "processed"
	FailedDir    = "failed"
)

// ImportFunc imports the workbook at path.
type ImportFunc func(ctx context.Context, path string) error

// ImportHandlers routes dropped workbooks by sub-directory.
type ImportHandlers struct {
	Hazards   ImportFunc
	Personnel ImportFunc
}

// ImportWatcher imports workbooks dropped into <dir>/hazards and
// <dir>/personnel. A file is imported once it has been quiet for the
// debounce period, then moved to processed/ or failed/ next to it.
// Workbooks already present when Run starts are imported too.
type ImportWatcher struct {
	dir      string
	debounce time.Duration
	routes   map[string]ImportFunc

	mu      sync.Mutex
	pending map[string]time.Time

	logger *logger.Logger
}

func NewImportWatcher(dir string, debounce time.Duration, handlers ImportHandlers, log *logger.Logger) *ImportWatcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	routes := make(map[string]ImportFunc, 2)
	if handlers.Hazards != nil {
		routes[filepath.Join(dir, HazardsDir)] = handlers.Hazards
	}
	if handlers.Personnel != nil {
		routes[filepath.Join(dir, PersonnelDir)] = handlers.Personnel
	}

	return &ImportWatcher{
		dir:      dir,
		debounce: debounce,
		routes:   routes,
		pending:  make(map[string]time.Time),
		logger:   log,
	}
}

func (w *ImportWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for routeDir := range w.routes {
		if err = os.MkdirAll(routeDir, 0o755); err != nil {
			return fmt.Errorf("create drop dir: %w", err)
		}
		if err = watcher.Add(routeDir); err != nil {
			return fmt.Errorf("watch %s: %w", routeDir, err)
		}
		w.logger.Info().Str("dir", routeDir).Msg("watching drop directory")
		w.queueExisting(routeDir)
	}

	tick := w.debounce / 5
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("import watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(werr).Msg("watcher error")

		case now := <-ticker.C:
			w.processDue(ctx, now)
		}
	}
}

func (w *ImportWatcher) queueExisting(routeDir string) {
	entries, err := os.ReadDir(routeDir)
	if err != nil {
		w.logger.Err(err).Str("dir", routeDir).Msg("error listing drop directory")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range entries {
		path := filepath.Join(routeDir, e.Name())
		if !e.IsDir() && importer.IsWorkbook(path) {
			w.pending[path] = time.Time{}
		}
	}
}

func (w *ImportWatcher) handleEvent(event fsnotify.Event) {
	if !importer.IsWorkbook(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		w.pending[event.Name] = time.Now()
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		delete(w.pending, event.Name)
	}
}

// processDue imports files whose last write is older than the debounce
// period, one at a time and in name order.
func (w *ImportWatcher) processDue(ctx context.Context, now time.Time) {
	w.mu.Lock()
	var due []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			due = append(due, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	sort.Strings(due)
	for _, path := range due {
		if ctx.Err() != nil {
			return
		}
		w.importOne(ctx, path)
	}
}

func (w *ImportWatcher) importOne(ctx context.Context, path string) {
	routeDir := filepath.Dir(path)
	handler, ok := w.routes[routeDir]
	if !ok {
		return
	}

	log := w.logger.With().Str("path", path).Logger()

	err := handler(ctx, path)
	target := ProcessedDir
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error().Err(err).Msg("import of dropped workbook failed")
		target = FailedDir
	} else {
		log.Info().Msg("dropped workbook imported")
	}

	if moveErr := move(path, filepath.Join(routeDir, target)); moveErr != nil {
		log.Error().Err(moveErr).Str("target", target).Msg("error moving dropped workbook")
	}
}

// move places path inside dir, prefixing the name with a timestamp when a
// file of that name is already there.
func move(path, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	dest := filepath.Join(dir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		dest = filepath.Join(dir, time.Now().Format("20060102-150405.000-")+filepath.Base(path))
	}
	return os.Rename(path, dest)
}
