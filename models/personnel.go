// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Personnel is one roster entry. Name and Department together form the
// natural key used by imports.
type Personnel struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	StartDate  string `json:"startDate"`
	// EndDate is empty while the person is still active.
	EndDate string `json:"endDate"`
}

// Active reports whether the person has no end date.
func (p Personnel) Active() bool {
	return p.EndDate == ""
}
