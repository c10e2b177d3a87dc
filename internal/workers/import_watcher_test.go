// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	calls chan string
	err   error
}

func newRecorder(err error) *recorder {
	return &recorder{calls: make(chan string, 16), err: err}
}

func (r *recorder) importFile(_ context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.calls <- path
	return r.err
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func (r *recorder) wait(t *testing.T) string {
	t.Helper()
	select {
	case p := <-r.calls:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for import")
		return ""
	}
}

func startWatcher(t *testing.T, w *ImportWatcher) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
}

func waitForDir(t *testing.T, dir string) {
	t.Helper()
	require.Eventually(t, func() bool {
		info, err := os.Stat(dir)
		return err == nil && info.IsDir()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestImportWatcher_ImportsDroppedWorkbook(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	hazards := newRecorder(nil)
	personnel := newRecorder(nil)
	w := NewImportWatcher(dir, 30*time.Millisecond, ImportHandlers{
		Hazards:   hazards.importFile,
		Personnel: personnel.importFile,
	}, logger.Nop())

	stop := startWatcher(t, w)
	defer stop()

	waitForDir(t, filepath.Join(dir, HazardsDir))
	waitForDir(t, filepath.Join(dir, PersonnelDir))
	// give the watcher time to register both directories
	time.Sleep(50 * time.Millisecond)

	dropped := filepath.Join(dir, HazardsDir, "week42.xlsx")
	require.NoError(t, os.WriteFile(dropped, []byte("workbook"), 0o644))

	assert.Equal(t, dropped, hazards.wait(t))

	processed := filepath.Join(dir, HazardsDir, ProcessedDir, "week42.xlsx")
	require.Eventually(t, func() bool {
		_, err := os.Stat(processed)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	_, err := os.Stat(dropped)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, personnel.seen())
}

func TestImportWatcher_IgnoresNonWorkbooks(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	hazards := newRecorder(nil)
	w := NewImportWatcher(dir, 20*time.Millisecond, ImportHandlers{Hazards: hazards.importFile}, logger.Nop())

	stop := startWatcher(t, w)
	waitForDir(t, filepath.Join(dir, HazardsDir))
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, HazardsDir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, HazardsDir, "~$lock.xlsx"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	stop()

	assert.Empty(t, hazards.seen())
}

func TestImportWatcher_ImportsExistingFilesOnStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	personnelDir := filepath.Join(dir, PersonnelDir)
	require.NoError(t, os.MkdirAll(personnelDir, 0o755))
	existing := filepath.Join(personnelDir, "roster.xlsx")
	require.NoError(t, os.WriteFile(existing, []byte("workbook"), 0o644))

	personnel := newRecorder(nil)
	w := NewImportWatcher(dir, 20*time.Millisecond, ImportHandlers{Personnel: personnel.importFile}, logger.Nop())

	stop := startWatcher(t, w)
	defer stop()

	assert.Equal(t, existing, personnel.wait(t))
}

func TestImportWatcher_FailedImportIsMovedAside(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	hazardsDir := filepath.Join(dir, HazardsDir)
	require.NoError(t, os.MkdirAll(hazardsDir, 0o755))
	bad := filepath.Join(hazardsDir, "broken.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0o644))

	hazards := newRecorder(errors.New("zip: not a valid zip file"))
	w := NewImportWatcher(dir, 20*time.Millisecond, ImportHandlers{Hazards: hazards.importFile}, logger.Nop())

	stop := startWatcher(t, w)
	defer stop()

	hazards.wait(t)
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(hazardsDir, FailedDir, "broken.xlsx"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestMove_KeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ProcessedDir)
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a.xlsx"), []byte("old"), 0o644))

	src := filepath.Join(dir, "a.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, move(src, target))

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	old, err := os.ReadFile(filepath.Join(target, "a.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}
