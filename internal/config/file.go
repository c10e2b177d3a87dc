// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a config file. The same tags
// serve JSON and YAML documents.
type StructuredFileConfig struct {
	App struct {
		BootstrapUsername string `json:"bootstrap_username" yaml:"bootstrap_username"`
		BootstrapPassword string `json:"bootstrap_password" yaml:"bootstrap_password"`
		PasswordHashing   string `json:"password_hashing" yaml:"password_hashing"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Driver      string `json:"driver" yaml:"driver"`
		DSN         string `json:"dsn" yaml:"dsn"`
		RedisURL    string `json:"redis_url" yaml:"redis_url"`
		RedisPrefix string `json:"redis_prefix" yaml:"redis_prefix"`
		FilePath    string `json:"file_path" yaml:"file_path"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Import struct {
		EmptyKeyPolicy string   `json:"empty_key_policy" yaml:"empty_key_policy"`
		WatchDir       string   `json:"watch_dir" yaml:"watch_dir"`
		Debounce       Duration `json:"debounce" yaml:"debounce"`
	} `json:"import,omitempty" yaml:"import,omitempty"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			BootstrapUsername: fileCfg.App.BootstrapUsername,
			BootstrapPassword: fileCfg.App.BootstrapPassword,
			PasswordHashing:   fileCfg.App.PasswordHashing,
		},
		Storage: Storage{
			Driver:      fileCfg.Storage.Driver,
			DSN:         fileCfg.Storage.DSN,
			RedisURL:    fileCfg.Storage.RedisURL,
			RedisPrefix: fileCfg.Storage.RedisPrefix,
			FilePath:    fileCfg.Storage.FilePath,
		},
		Import: Import{
			EmptyKeyPolicy: fileCfg.Import.EmptyKeyPolicy,
			WatchDir:       fileCfg.Import.WatchDir,
			Debounce:       time.Duration(fileCfg.Import.Debounce),
		},
		Log: Log{
			File:  fileCfg.Log.File,
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "500ms" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}
	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
