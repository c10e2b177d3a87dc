// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"slices"

	"github.com/MKhiriev/hazard-keeper/models"
)

type personKey struct {
	name       string
	department string
}

func keyOf(p models.Personnel) personKey {
	return personKey{name: p.Name, department: p.Department}
}

func (k personKey) empty() bool {
	return k.name == "" && k.department == ""
}

// ParsePersonnelRow maps one roster row to a personnel candidate.
func ParsePersonnelRow(row models.Row) models.Personnel {
	return models.Personnel{
		Name:       row.Get(ColName),
		Department: row.Get(ColDepartment),
		StartDate:  NormalizeDate(row.Get(ColStartDate)),
		EndDate:    NormalizeDate(row.Get(ColEndDate)),
	}
}

// Personnel merges roster rows into existing. A match on (name, department)
// is overwritten unconditionally and keeps its id.
func Personnel(existing []models.Personnel, rows []models.Row, opts Options) ([]models.Personnel, error) {
	result := slices.Clone(existing)
	if result == nil {
		result = []models.Personnel{}
	}
	if len(rows) == 0 {
		return result, nil
	}

	policy := opts.policy()

	candidates := make([]models.Personnel, len(rows))
	var missing []int
	for i, row := range rows {
		candidates[i] = ParsePersonnelRow(row)
		if keyOf(candidates[i]).empty() {
			missing = append(missing, i+1)
		}
	}
	if policy == EmptyKeyReject && len(missing) > 0 {
		return nil, &MissingKeyError{Rows: missing}
	}

	seq := opts.Seq
	if seq == nil {
		seq = NewSequence(0)
		for _, p := range existing {
			seq.Observe(p.ID)
		}
	}

	keyed := func(k personKey) bool { return !k.empty() || policy == EmptyKeyMerge }

	index := make(map[personKey]int, len(result))
	for i, p := range result {
		k := keyOf(p)
		if !keyed(k) {
			continue
		}
		if _, dup := index[k]; !dup {
			index[k] = i
		}
	}

	for _, candidate := range candidates {
		k := keyOf(candidate)
		if keyed(k) {
			if pos, ok := index[k]; ok {
				candidate.ID = result[pos].ID
				result[pos] = candidate
				continue
			}
		}

		candidate.ID = seq.Next()
		result = append(result, candidate)
		if keyed(k) {
			index[k] = len(result) - 1
		}
	}

	return result, nil
}

// DeletePersonnel drops the entry with the given id.
func DeletePersonnel(personnel []models.Personnel, id int64) []models.Personnel {
	return slices.DeleteFunc(slices.Clone(personnel), func(p models.Personnel) bool {
		return p.ID == id
	})
}
