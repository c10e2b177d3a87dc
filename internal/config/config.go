// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// hazard-keeper binaries. It aggregates all sub-configurations and is
// populated by merging defaults, an optional JSON/YAML file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//
// All environment variables additionally carry the global [EnvPrefix].
type StructuredConfig struct {
	// App holds application-level settings: the bootstrap administrator and
	// the password storage mode.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Import holds spreadsheet import policies and the drop-directory watcher
	// settings.
	Import Import `envPrefix:"IMPORT_"`

	// Log configures the client log file.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the HK_CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// BootstrapUsername is the login seeded on first start when no
	// credentials exist.
	// Env: HK_APP_BOOTSTRAP_USERNAME
	BootstrapUsername string `env:"BOOTSTRAP_USERNAME"`

	// BootstrapPassword is the password of the seeded administrator.
	// Env: HK_APP_BOOTSTRAP_PASSWORD
	BootstrapPassword string `env:"BOOTSTRAP_PASSWORD"`

	// PasswordHashing is either "plain" or "bcrypt".
	// Env: HK_APP_PASSWORD_HASHING
	PasswordHashing string `env:"PASSWORD_HASHING"`
}

// Storage holds the key-value backend settings.
type Storage struct {
	// Driver is one of "sqlite", "postgres", "redis", "file" or "memory".
	// Env: HK_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the database connection string for the sqlite and postgres
	// drivers (a file path for sqlite).
	// Env: HK_STORAGE_DSN
	DSN string `env:"DSN"`

	// RedisURL is a redis:// URL used by the redis driver.
	// Env: HK_STORAGE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// RedisPrefix namespaces every key written to Redis.
	// Env: HK_STORAGE_REDIS_PREFIX
	RedisPrefix string `env:"REDIS_PREFIX"`

	// FilePath is the JSON document used by the file driver.
	// Env: HK_STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Import holds spreadsheet import settings.
type Import struct {
	// EmptyKeyPolicy decides what happens to rows without a natural key:
	// "merge", "distinct" or "reject".
	// Env: HK_IMPORT_EMPTY_KEY_POLICY
	EmptyKeyPolicy string `env:"EMPTY_KEY_POLICY"`

	// WatchDir is the drop directory scanned by the import watcher.
	// Env: HK_IMPORT_WATCH_DIR
	WatchDir string `env:"WATCH_DIR"`

	// Debounce is the quiet period after the last write to a dropped file
	// before it is imported.
	// Env: HK_IMPORT_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file. Empty means "logs" next to the
	// executable.
	// Env: HK_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: HK_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverFile     = "file"
	DriverMemory   = "memory"
)

// Password hashing modes.
const (
	HashingPlain  = "plain"
	HashingBcrypt = "bcrypt"
)

// Empty natural key policies.
const (
	EmptyKeyMerge    = "merge"
	EmptyKeyDistinct = "distinct"
	EmptyKeyReject   = "reject"
)

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BootstrapUsername: "decro",
			BootstrapPassword: "123456",
			PasswordHashing:   HashingPlain,
		},
		Storage: Storage{
			Driver:      DriverSQLite,
			DSN:         "hazard-keeper.db",
			RedisPrefix: "hazard-keeper:",
			FilePath:    "hazard-keeper.json",
		},
		Import: Import{
			EmptyKeyPolicy: EmptyKeyDistinct,
			Debounce:       500 * time.Millisecond,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags parsed from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, err
	}
	return Load(flags)
}

// Load is like [GetStructuredConfig] but takes flag values that were already
// parsed by the caller (e.g. cobra persistent flags).
func Load(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
