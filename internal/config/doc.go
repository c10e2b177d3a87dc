// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables (prefixed with HK_)
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for binaries that parse
// their own flags and [Load] for callers that already hold flag values.
package config
