// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the command-line flags of the interactive client.
//
// Flags:
//
//	-c/-config JSON or YAML config file path
//	-driver storage driver (sqlite, postgres, redis, file, memory)
//	-d database DSN
//	-redis-url redis URL
//	-file storage file path for the file driver
//	-password-hashing plain or bcrypt
//	-empty-key-policy merge, distinct or reject
//	-watch-dir import drop directory
//	-debounce import watcher debounce (e.g. "500ms")
//	-log-file log file path
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("hazard-keeper", flag.ContinueOnError)

	var cfg StructuredConfig
	var debounce time.Duration

	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.Storage.Driver, "driver", "", "Storage driver")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.RedisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&cfg.Storage.FilePath, "file", "", "Storage file path")
	fs.StringVar(&cfg.App.PasswordHashing, "password-hashing", "", "Password hashing: plain or bcrypt")
	fs.StringVar(&cfg.Import.EmptyKeyPolicy, "empty-key-policy", "", "Rows without key: merge, distinct or reject")
	fs.StringVar(&cfg.Import.WatchDir, "watch-dir", "", "Import drop directory")
	fs.DurationVar(&debounce, "debounce", 0, "Import watcher debounce (e.g. 500ms)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Import.Debounce = debounce

	return &cfg, nil
}
