// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background jobs of hazardctl.
// It defines the Worker interface and a Workers aggregate that runs several
// workers together and stops them all when one fails.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails; cancellation is not an error.
type Worker interface {
	Run(ctx context.Context) error
}
