// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
)

// BlobStore is the best-effort adapter over a [KeyValueStore]. Values are
// JSON encoded. Every failure (encoding, backend, corrupt value) is logged
// and swallowed: reads degrade to "absent" and writes to "dropped".
type BlobStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewBlobStore wraps kv.
func NewBlobStore(kv KeyValueStore, log *logger.Logger) *BlobStore {
	return &BlobStore{kv: kv, logger: log}
}

// Save encodes v and writes it under key.
func (b *BlobStore) Save(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		b.logger.Err(err).Str("func", "BlobStore.Save").Str("key", key).Msg("error serializing value, write dropped")
		return
	}

	if err = b.kv.Set(ctx, key, payload); err != nil {
		b.logger.Err(err).Str("func", "BlobStore.Save").Str("key", key).Msg("error saving value, write dropped")
	}
}

// Load decodes the value stored under key into out and reports whether it
// was present and readable. Callers pass a fresh variable: on a false return
// out may hold a partial decode.
func (b *BlobStore) Load(ctx context.Context, key string, out any) bool {
	payload, err := b.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false
	}
	if err != nil {
		b.logger.Err(err).Str("func", "BlobStore.Load").Str("key", key).Msg("error loading value, treated as absent")
		return false
	}

	if err = decode(payload, out); err != nil {
		b.logger.Err(err).Str("func", "BlobStore.Load").Str("key", key).Msg("corrupt stored value, treated as absent")
		return false
	}
	return true
}

func decode(payload []byte, out any) error {
	if !json.Valid(payload) {
		return errInvalidJSON
	}
	if string(bytes.TrimSpace(payload)) == "null" {
		return errNullValue
	}
	return json.Unmarshal(payload, out)
}

// Close closes the underlying backend.
func (b *BlobStore) Close() error {
	return b.kv.Close()
}
