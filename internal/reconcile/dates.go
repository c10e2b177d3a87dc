// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2 15:04:05",
	time.RFC3339,
}

// Excel serial numbers beyond 9999-12-31 are not dates.
const maxExcelSerial = 2958465

// ParseDate understands the date notations found in OA exports, including
// raw Excel serial numbers. Zone-less values are read as UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 && serial <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// LaterDate picks the chronologically later of two date strings and returns
// it unchanged. An empty side yields the other. When only one side parses it
// wins; when neither parses, or both are equal, b is returned.
func LaterDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}

	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	switch {
	case okA && okB:
		if ta.After(tb) {
			return a
		}
		return b
	case okA:
		return a
	default:
		return b
	}
}

// midnight returns the calendar date of t as a UTC midnight, so that it
// compares cleanly with zone-less parsed dates.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDate rewrites an Excel serial number as an ISO date (with a time
// part when the serial has one). Anything else is returned trimmed.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial <= 0 || serial > maxExcelSerial {
		return value
	}

	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
