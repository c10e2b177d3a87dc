// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Row is one data row of an imported worksheet, keyed by header label.
// Missing cells are absent from the map; Get returns "" for them.
type Row map[string]string

// Get returns the cell value stored under column, or "".
func (r Row) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}

// FirstOf returns the first non-empty value among columns.
func (r Row) FirstOf(columns ...string) string {
	for _, c := range columns {
		if v := r.Get(c); v != "" {
			return v
		}
	}
	return ""
}
