// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverRedis:
		if cfg.Storage.RedisURL == "" {
			return fmt.Errorf("%w: redis url is required", ErrInvalidStorageConfigs)
		}
	case DriverFile:
		if cfg.Storage.FilePath == "" {
			return fmt.Errorf("%w: file path is required", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	switch cfg.App.PasswordHashing {
	case HashingPlain, HashingBcrypt:
	default:
		return fmt.Errorf("%w: unknown password hashing %q", ErrInvalidAppConfigs, cfg.App.PasswordHashing)
	}
	if cfg.App.BootstrapUsername == "" || cfg.App.BootstrapPassword == "" {
		return fmt.Errorf("%w: bootstrap administrator needs a username and a password", ErrInvalidAppConfigs)
	}

	switch cfg.Import.EmptyKeyPolicy {
	case EmptyKeyMerge, EmptyKeyDistinct, EmptyKeyReject:
	default:
		return fmt.Errorf("%w: unknown empty key policy %q", ErrInvalidImportConfigs, cfg.Import.EmptyKeyPolicy)
	}
	if cfg.Import.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidImportConfigs)
	}

	return nil
}
