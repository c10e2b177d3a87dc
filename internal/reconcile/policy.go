// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EmptyKeyPolicy decides what happens to imported rows that lack a natural
// key.
type EmptyKeyPolicy string

const (
	// EmptyKeyMerge treats "" as an ordinary key: all unkeyed rows collapse
	// into a single record.
	EmptyKeyMerge EmptyKeyPolicy = "merge"
	// EmptyKeyDistinct makes every unkeyed row a new record that never
	// matches anything.
	EmptyKeyDistinct EmptyKeyPolicy = "distinct"
	// EmptyKeyReject fails the whole batch with [MissingKeyError].
	EmptyKeyReject EmptyKeyPolicy = "reject"
)

// ParseEmptyKeyPolicy maps a configuration value to a policy. "" selects
// [EmptyKeyDistinct].
func ParseEmptyKeyPolicy(s string) (EmptyKeyPolicy, error) {
	switch p := EmptyKeyPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return EmptyKeyDistinct, nil
	case EmptyKeyMerge, EmptyKeyDistinct, EmptyKeyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown empty key policy %q", s)
	}
}

// ErrMissingNaturalKey is matched by [MissingKeyError] via errors.Is.
var ErrMissingNaturalKey = errors.New("import rows without natural key")

// MissingKeyError lists the 1-based data row numbers that had no key.
type MissingKeyError struct {
	Rows []int
}

func (e *MissingKeyError) Error() string {
	rows := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("%s: rows %s", ErrMissingNaturalKey, strings.Join(rows, ", "))
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingNaturalKey
}

// Options carries everything a merge needs besides the data.
type Options struct {
	// Today is the clock reading used for overdue days. Zero means
	// time.Now().
	Today time.Time
	// EmptyKey defaults to [EmptyKeyDistinct].
	EmptyKey EmptyKeyPolicy
	// Seq issues ids for new records. Nil starts a sequence after the
	// highest existing id.
	Seq *Sequence
}

func (o Options) today() time.Time {
	if o.Today.IsZero() {
		return time.Now()
	}
	return o.Today
}

func (o Options) policy() EmptyKeyPolicy {
	if o.EmptyKey == "" {
		return EmptyKeyDistinct
	}
	return o.EmptyKey
}
