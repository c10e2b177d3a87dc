// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/hazard-keeper/models"
)

type loginDoneMsg struct {
	session models.Session
	err     error
}

type hazardsLoadedMsg struct {
	items  []models.Hazard
	status string
	err    error
}

type personnelLoadedMsg struct {
	items  []models.Personnel
	status string
	err    error
}

type usersLoadedMsg struct {
	items  []models.User
	status string
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
