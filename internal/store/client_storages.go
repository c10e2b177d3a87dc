// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
)

// ClientStorages groups the typed repositories the service layer works with.
// All of them share one [BlobStore] and therefore one backend.
type ClientStorages struct {
	HazardRepository    HazardRepository
	PersonnelRepository PersonnelRepository
	UserRepository      UserRepository
	SessionRepository   SessionRepository

	blobs *BlobStore
}

// NewClientStorages opens the backend selected by cfg.Driver, runs schema
// migrations for the SQL drivers, and wires the repositories on top of it.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	kv, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewClientStoragesFromKV(kv, logger), nil
}

// NewClientStoragesFromKV wires repositories over an already opened backend.
func NewClientStoragesFromKV(kv KeyValueStore, logger *logger.Logger) *ClientStorages {
	blobs := NewBlobStore(kv, logger)
	return &ClientStorages{
		HazardRepository:    NewHazardRepository(blobs),
		PersonnelRepository: NewPersonnelRepository(blobs),
		UserRepository:      NewUserRepository(blobs),
		SessionRepository:   NewSessionRepository(blobs),
		blobs:               blobs,
	}
}

// Close releases the backend.
func (s *ClientStorages) Close() error {
	return s.blobs.Close()
}

func openBackend(ctx context.Context, cfg config.Storage, logger *logger.Logger) (KeyValueStore, error) {
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DSN, logger)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DSN, logger)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLStore(db, logger), nil
	case config.DriverRedis:
		return NewConnectRedis(ctx, cfg.RedisURL, cfg.RedisPrefix, logger)
	case config.DriverFile:
		return NewFileStore(cfg.FilePath, logger)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
