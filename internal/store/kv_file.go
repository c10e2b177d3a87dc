// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
)

// fileStore keeps every blob in one JSON document. The whole document is
// rewritten through a temp file and rename on each Set.
type fileStore struct {
	path   string
	logger *logger.Logger

	mu    sync.RWMutex
	items map[string]json.RawMessage
}

// NewFileStore opens (or lazily creates) the JSON document at path. A
// document that does not decode is renamed to <path>.corrupt-<timestamp>
// and the store starts empty.
func NewFileStore(path string, log *logger.Logger) (KeyValueStore, error) {
	s := &fileStore{
		path:   path,
		logger: log,
		items:  make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err = json.Unmarshal(data, &s.items); err != nil {
		s.items = make(map[string]json.RawMessage)
		return s.quarantine(err)
	}
	if s.items == nil {
		s.items = make(map[string]json.RawMessage)
	}
	return nil
}

// quarantine moves an undecodable document out of the way so the next Set
// does not overwrite it.
func (s *fileStore) quarantine(decodeErr error) error {
	aside := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102T150405.000000000"))
	if err := os.Rename(s.path, aside); err != nil {
		s.logger.Err(err).Str("func", "fileStore.quarantine").Str("path", s.path).Msg("cannot move corrupt storage file aside")
		return fmt.Errorf("move corrupt storage file: %w", err)
	}
	s.logger.Warn().Err(decodeErr).Str("func", "fileStore.quarantine").
		Str("path", s.path).Str("moved_to", aside).
		Msg("storage file is corrupt; starting with an empty store")
	return nil
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("file storage accepts json values only (key=%s)", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = append(json.RawMessage(nil), value...)
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close storage file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}
