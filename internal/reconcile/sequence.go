// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

// Sequence hands out record ids. It starts after the last id ever issued
// and only moves forward, so ids are never reused after deletions.
type Sequence struct {
	last int64
}

// NewSequence resumes a sequence whose last issued id is last.
func NewSequence(last int64) *Sequence {
	if last < 0 {
		last = 0
	}
	return &Sequence{last: last}
}

// Next issues a fresh id.
func (s *Sequence) Next() int64 {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or the starting point.
func (s *Sequence) Last() int64 {
	return s.last
}

// Observe advances the sequence past id. It is used when existing records
// carry ids that were issued before the counter was persisted.
func (s *Sequence) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}
