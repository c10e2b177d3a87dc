// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across packages: context keys
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// BatchIDCtxKey stores the identifier of the import batch being processed.
var BatchIDCtxKey = contextKey("batchID")

// WithBatchID returns a copy of ctx carrying batchID.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, BatchIDCtxKey, batchID)
}

// GetBatchIDFromContext retrieves the import batch id from the context.
// ok is false when the value is missing or has an unexpected type.
func GetBatchIDFromContext(ctx context.Context) (string, bool) {
	batchID, ok := ctx.Value(BatchIDCtxKey).(string)
	return batchID, ok
}
