// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrNotAuthenticated = errors.New("authentication required: pass --username and --password")
	ErrForbidden        = errors.New("permission denied")
	ErrInvalidID        = errors.New("invalid id")
	ErrNothingToChange  = errors.New("nothing to change")
	ErrNoWatchDir       = errors.New("no watch directory: pass it as an argument or set import.watch_dir")
)
