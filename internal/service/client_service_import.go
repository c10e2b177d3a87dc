// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/utils"
)

func (o ImportOptions) withDefaults() ImportOptions {
	if o.EmptyKeyPolicy == "" {
		o.EmptyKeyPolicy = reconcile.EmptyKeyDistinct
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.BatchIDs == nil {
		o.BatchIDs = utils.NewUUIDGenerator()
	}
	return o
}

// batchContext tags ctx and its logger with a fresh import batch id.
func (o ImportOptions) batchContext(ctx context.Context, base *logger.Logger, collection string) (context.Context, *logger.Logger) {
	batchID := o.BatchIDs.Generate()
	log := &logger.Logger{Logger: base.With().
		Str("batch_id", batchID).
		Str("collection", collection).
		Logger()}

	ctx = utils.WithBatchID(ctx, batchID)
	return log.WithContext(ctx), log
}
