// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-c", "cfg.yaml",
		"-driver", "postgres",
		"-d", "postgres://u:p@localhost/hk",
		"-redis-url", "redis://localhost:6379",
		"-file", "store.json",
		"-password-hashing", "bcrypt",
		"-empty-key-policy", "merge",
		"-watch-dir", "/drop",
		"-debounce", "250ms",
		"-log-file", "hk.log",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "cfg.yaml", cfg.FilePath)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://u:p@localhost/hk", cfg.Storage.DSN)
	assert.Equal(t, "redis://localhost:6379", cfg.Storage.RedisURL)
	assert.Equal(t, "store.json", cfg.Storage.FilePath)
	assert.Equal(t, HashingBcrypt, cfg.App.PasswordHashing)
	assert.Equal(t, EmptyKeyMerge, cfg.Import.EmptyKeyPolicy)
	assert.Equal(t, "/drop", cfg.Import.WatchDir)
	assert.Equal(t, 250*time.Millisecond, cfg.Import.Debounce)
	assert.Equal(t, "hk.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.FilePath)
}

func TestParseFlags_NoArgsIsZero(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
