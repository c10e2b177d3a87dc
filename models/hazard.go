// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Hazard is a single safety-hazard report imported from the OA export.
//
// JSON names follow the persisted "hazards" blob so that previously stored
// collections keep loading after upgrades.
type Hazard struct {
	// ID is the surrogate identifier. It is assigned once when the record is
	// first created and survives re-imports of the same report.
	ID int64 `json:"id"`

	// MainProcessNumber is the OA main process number (主流程单号).
	MainProcessNumber string `json:"oaMainProcessNumber"`

	// SubProcessNumber is the natural key used to match re-imported rows
	// against existing records. It is unique within a collection.
	SubProcessNumber string `json:"oaSubProcessNumber"`

	Initiator             string `json:"initiator"`
	InspectionDate        string `json:"inspectionDate"`
	FactoryArea           string `json:"factoryArea"`
	HazardType            string `json:"hazardType"`
	Location              string `json:"location"`
	Description           string `json:"description"`
	ResponsibleDepartment string `json:"responsibleDepartment"`
	ResponsiblePerson     string `json:"responsiblePerson"`

	// Deadline is the later of the original deadline and the extension date.
	Deadline string `json:"deadline"`

	// Progress is the current workflow stage label (当前节点).
	Progress string `json:"progress"`

	// CurrentHandler is derived: the un-actioned person while the report is
	// awaiting action, empty otherwise.
	CurrentHandler string `json:"currentHandler"`

	// RectificationDeadline is the date overdue days are counted from (隐患整改期限).
	// A manual deadline edit replaces it. Records stored before it existed
	// leave it empty.
	RectificationDeadline string `json:"rectificationDeadline,omitempty"`

	CompletionDate string `json:"completionDate"`
	DeductPoints   bool   `json:"deductPoints"`

	// OverdueDays is derived and never negative.
	OverdueDays int `json:"overdueDays"`

	// ManualLock is set only by a person. Locked records are skipped by
	// imports.
	ManualLock bool `json:"manualLock"`
}

// Overdue reports whether the hazard is past its deadline.
func (h Hazard) Overdue() bool {
	return h.OverdueDays > 0
}

// HazardPatch carries a manual edit. Nil fields are left untouched.
type HazardPatch struct {
	ResponsiblePerson *string `json:"responsiblePerson,omitempty"`
	Deadline          *string `json:"deadline,omitempty" validate:"omitempty,max=64,hkdate"`
}

// Empty reports whether the patch changes nothing.
func (p HazardPatch) Empty() bool {
	return p.ResponsiblePerson == nil && p.Deadline == nil
}
