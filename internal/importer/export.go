// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/models"
)

const exportSheet = "Sheet1"

// Extra columns written on export only. Imports ignore them.
const (
	ColID          = "ID"
	ColOverdueDays = "超期天数"
	ColLocked      = "锁定"
	colNo          = "否"
)

var hazardColumns = []string{
	ColID,
	reconcile.ColMainProcessNumber,
	reconcile.ColDocumentNumber,
	reconcile.ColInitiator,
	reconcile.ColInspectionDate,
	reconcile.ColFactoryArea,
	reconcile.ColHazardType,
	reconcile.ColLocation,
	reconcile.ColDescription,
	reconcile.ColResponsibleDepartment,
	reconcile.ColResponsiblePerson,
	reconcile.ColDeadline,
	reconcile.ColRectificationDeadline,
	reconcile.ColProgress,
	reconcile.ColUnactioned,
	reconcile.ColCompletionDate,
	reconcile.ColDeductPoints,
	ColOverdueDays,
	ColLocked,
}

// WriteHazards writes hazards as an .xlsx workbook whose columns use the
// export labels, so the result can be imported again.
func WriteHazards(w io.Writer, hazards []models.Hazard) error {
	f := excelize.NewFile()
	defer f.Close()

	// Add headers
	for i, label := range hazardColumns {
		if err := setCell(f, i+1, 1, label); err != nil {
			return err
		}
	}

	// Add data
	for r, h := range hazards {
		values := []any{
			h.ID,
			h.MainProcessNumber,
			documentNumber(h.SubProcessNumber),
			h.Initiator,
			h.InspectionDate,
			h.FactoryArea,
			h.HazardType,
			h.Location,
			h.Description,
			h.ResponsibleDepartment,
			h.ResponsiblePerson,
			h.Deadline,
			h.RectificationDeadline,
			h.Progress,
			h.CurrentHandler,
			h.CompletionDate,
			yesNo(h.DeductPoints),
			h.OverdueDays,
			yesNo(h.ManualLock),
		}
		for c, v := range values {
			if err := setCell(f, c+1, r+2, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err = f.SetCellValue(exportSheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

func documentNumber(sub string) string {
	if sub == "" {
		return ""
	}
	return reconcile.ColDocumentNumber + sub
}

func yesNo(b bool) string {
	if b {
		return reconcile.Yes
	}
	return colNo
}
