// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"slices"
	"time"

	"github.com/MKhiriev/hazard-keeper/models"
)

// ParseHazardRow maps one export row to a hazard candidate. The id is left
// zero and the lock is always off.
func ParseHazardRow(row models.Row, today time.Time) models.Hazard {
	progress := row.Get(ColProgress)
	deadline := LaterDate(NormalizeDate(row.Get(ColDeadline)), NormalizeDate(row.Get(ColExtendedDeadline)))
	rectification := NormalizeDate(row.Get(ColRectificationDeadline))

	return models.Hazard{
		MainProcessNumber:     row.Get(ColMainProcessNumber),
		SubProcessNumber:      ExtractSubProcessNumber(row.Get(ColDocumentNumber)),
		Initiator:             row.Get(ColInitiator),
		InspectionDate:        NormalizeDate(row.Get(ColInspectionDate)),
		FactoryArea:           row.Get(ColFactoryArea),
		HazardType:            row.Get(ColHazardType),
		Location:              row.Get(ColLocation),
		Description:           row.Get(ColDescription),
		ResponsibleDepartment: row.Get(ColResponsibleDepartment),
		ResponsiblePerson:     row.FirstOf(ColChangedResponsible, ColResponsiblePerson),
		Deadline:              deadline,
		Progress:              progress,
		CurrentHandler:        CurrentHandler(progress, row.Get(ColUnactioned)),
		RectificationDeadline: rectification,
		CompletionDate:        NormalizeDate(row.Get(ColCompletionDate)),
		DeductPoints:          row.Get(ColDeductPoints) == Yes,
		OverdueDays:           OverdueDays(progress, rectification, today),
		ManualLock:            false,
	}
}

// Hazards merges rows into existing and returns the new collection. existing
// is not modified. The only error is a [MissingKeyError] under
// [EmptyKeyReject].
func Hazards(existing []models.Hazard, rows []models.Row, opts Options) ([]models.Hazard, error) {
	result := slices.Clone(existing)
	if result == nil {
		result = []models.Hazard{}
	}
	if len(rows) == 0 {
		return result, nil
	}

	policy := opts.policy()
	today := opts.today()

	candidates := make([]models.Hazard, len(rows))
	var missing []int
	for i, row := range rows {
		candidates[i] = ParseHazardRow(row, today)
		if candidates[i].SubProcessNumber == "" {
			missing = append(missing, i+1)
		}
	}
	if policy == EmptyKeyReject && len(missing) > 0 {
		return nil, &MissingKeyError{Rows: missing}
	}

	seq := opts.Seq
	if seq == nil {
		seq = NewSequence(0)
		for _, h := range existing {
			seq.Observe(h.ID)
		}
	}

	keyed := func(key string) bool { return key != "" || policy == EmptyKeyMerge }

	index := make(map[string]int, len(result))
	for i, h := range result {
		if !keyed(h.SubProcessNumber) {
			continue
		}
		if _, dup := index[h.SubProcessNumber]; !dup {
			index[h.SubProcessNumber] = i
		}
	}

	for _, candidate := range candidates {
		key := candidate.SubProcessNumber
		if keyed(key) {
			if pos, ok := index[key]; ok {
				current := result[pos]
				if current.ManualLock {
					continue
				}
				candidate.ID = current.ID
				candidate.ManualLock = current.ManualLock
				result[pos] = candidate
				continue
			}
		}

		candidate.ID = seq.Next()
		result = append(result, candidate)
		if keyed(key) {
			index[key] = len(result) - 1
		}
	}

	return result, nil
}

// Edit applies patch to the hazard with the given id. A changed deadline also
// becomes the date overdue days are counted from, and they are recomputed. An
// unknown id leaves the collection as it was.
func Edit(hazards []models.Hazard, id int64, patch models.HazardPatch, today time.Time) []models.Hazard {
	result := slices.Clone(hazards)
	for i := range result {
		if result[i].ID != id {
			continue
		}
		if patch.ResponsiblePerson != nil {
			result[i].ResponsiblePerson = *patch.ResponsiblePerson
		}
		if patch.Deadline != nil && *patch.Deadline != result[i].Deadline {
			result[i].Deadline = *patch.Deadline
			result[i].RectificationDeadline = *patch.Deadline
			result[i].OverdueDays = OverdueDays(result[i].Progress, result[i].RectificationDeadline, today)
		}
		break
	}
	return result
}

// ToggleLock flips the manual lock on the hazard with the given id.
func ToggleLock(hazards []models.Hazard, id int64) []models.Hazard {
	result := slices.Clone(hazards)
	for i := range result {
		if result[i].ID == id {
			result[i].ManualLock = !result[i].ManualLock
			break
		}
	}
	return result
}

// RefreshOverdue recomputes overdue days of every unlocked hazard against
// today from the same date the import counted them from. Locked hazards and
// records without that date keep their values.
func RefreshOverdue(hazards []models.Hazard, today time.Time) []models.Hazard {
	result := slices.Clone(hazards)
	for i := range result {
		if result[i].ManualLock || result[i].RectificationDeadline == "" {
			continue
		}
		result[i].OverdueDays = OverdueDays(result[i].Progress, result[i].RectificationDeadline, today)
	}
	return result
}
