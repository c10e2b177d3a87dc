// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
)

const (
	blobsTable       = "blobs"
	blobKeyColumn    = "blob_key"
	blobValueColumn  = "blob_value"
	blobUpdatedAtCol = "updated_at"

	upsertBlobSuffix = "ON CONFLICT (blob_key) DO UPDATE SET blob_value = excluded.blob_value, updated_at = excluded.updated_at"
)

// sqlStore keeps blobs in a single key/value table. The same statements run
// on SQLite and PostgreSQL, only the placeholder format differs.
type sqlStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStore builds a [KeyValueStore] on top of a migrated [DB].
func NewSQLStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqlStore{db: db, logger: log}
}

func (s *sqlStore) builder() sq.StatementBuilderType {
	placeholder := s.db.placeholder
	if placeholder == nil {
		placeholder = sq.Question
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Select(blobValueColumn).
		From(blobsTable).
		Where(sq.Eq{blobKeyColumn: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Get").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Get").Str("key", key).Str("pg_code", postgresError(err)).Msg("error reading blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Insert(blobsTable).
		Columns(blobKeyColumn, blobValueColumn, blobUpdatedAtCol).
		Values(key, string(value), time.Now().UTC()).
		Suffix(upsertBlobSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Set").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Set").Str("key", key).Str("pg_code", postgresError(err)).Msg("error writing blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// withRetry runs op once more when the first failure is classified as
// transient.
func (s *sqlStore) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || s.db.errorClassificator == nil {
		return err
	}
	if s.db.errorClassificator.Classify(err) != Retryable {
		return err
	}

	logger.FromContext(ctx).Warn().Err(err).Msg("retrying blob statement after transient error")
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(50 * time.Millisecond):
	}
	return op()
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
