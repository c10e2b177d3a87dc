// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by key-value backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownDriver is returned by [NewClientStorages] for a storage
	// driver it cannot construct.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrStoreClosed is returned by backends used after Close.
	ErrStoreClosed = errors.New("store is closed")

	errInvalidJSON = errors.New("stored value is not valid json")
	errNullValue   = errors.New("stored value is null")
)

// Low-level database operation errors wrapped by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an upsert fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
