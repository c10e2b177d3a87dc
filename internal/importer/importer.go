// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package importer converts .xlsx workbooks to and from the row shape the
// reconcile package works with.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/hazard-keeper/models"
)

// ErrNoWorksheet is returned for workbooks without any sheet.
var ErrNoWorksheet = errors.New("workbook has no worksheet")

// Extension is the only file type the importer reads.
const Extension = ".xlsx"

// IsWorkbook reports whether path looks like an importable workbook. Office
// lock files ("~$name.xlsx") are excluded.
func IsWorkbook(path string) bool {
	base := filepath.Base(path)
	return strings.EqualFold(filepath.Ext(base), Extension) && !strings.HasPrefix(base, "~$")
}

// ReadRows reads the first worksheet of the workbook in r. The first row with
// any content is the header; every later non-empty row becomes a [models.Row]
// keyed by trimmed header label. Cells are trimmed; raw values are returned,
// so date cells come through as Excel serial numbers.
func ReadRows(r io.Reader) ([]models.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var (
		header []string
		rows   []models.Row
	)
	for _, line := range cells {
		if blank(line) {
			continue
		}
		if header == nil {
			header = trimAll(line)
			continue
		}

		row := make(models.Row, len(header))
		for i, label := range header {
			if label == "" || i >= len(line) {
				continue
			}
			if v := strings.TrimSpace(line[i]); v != "" {
				row[label] = v
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadFile opens path and reads it with [ReadRows].
func ReadFile(path string) ([]models.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	return ReadRows(file)
}

func blank(line []string) bool {
	for _, c := range line {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimAll(line []string) []string {
	out := make([]string, len(line))
	for i, c := range line {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
