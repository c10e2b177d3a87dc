// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/hazard-keeper/internal/importer"
)

type promptPurpose int

const (
	promptImportHazards promptPurpose = iota
	promptExportHazards
	promptImportPersonnel
)

// promptModel asks for a workbook path.
type promptModel struct {
	form    formInputs
	purpose promptPurpose
}

func newPromptModel(purpose promptPurpose) promptModel {
	form := newFormInputs("/path/to/file" + importer.Extension)
	form.inputs[0].Width = 60
	if purpose == promptExportHazards {
		form.inputs[0].SetValue("hazards" + importer.Extension)
	}
	return promptModel{form: form, purpose: purpose}
}

func (m promptModel) title() string {
	switch m.purpose {
	case promptExportHazards:
		return "导出隐患数据"
	case promptImportPersonnel:
		return "上传人员信息 Excel 文件"
	default:
		return "上传 Excel 文件"
	}
}

func (m promptModel) back() screen {
	if m.purpose == promptImportPersonnel {
		return screenPersonnel
	}
	return screenHazards
}

func (m promptModel) View() string {
	return renderPage(m.title(), m.form.row("文件路径:", 0), "enter: 确定 │ esc: 取消")
}
