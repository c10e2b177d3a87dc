// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/hazard-keeper/models"
)

// hazardsModel is the hazard table with a detail pane for the selected row.
type hazardsModel struct {
	items   []models.Hazard
	idx     int
	rows    int
	loading bool
	status  string
}

func (m hazardsModel) current() (models.Hazard, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Hazard{}, false
	}
	return m.items[m.idx], true
}

var hazardColumns = []struct {
	title string
	width int
}{
	{"ID", 5},
	{"单据编号", 16},
	{"厂区", 10},
	{"类型", 10},
	{"责任人", 8},
	{"期限", 10},
	{"进度", 12},
	{"状态", 10},
}

func (m hazardsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case len(m.items) == 0:
		b.WriteString("暂无隐患数据，按 i 导入 Excel 文件\n")
	default:
		header := make([]string, len(hazardColumns))
		for i, c := range hazardColumns {
			header[i] = padText(c.title, c.width)
		}
		b.WriteString("  " + strings.Join(header, " │ ") + "\n")

		start, end := window(len(m.items), m.idx, m.rows)
		for i := start; i < end; i++ {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + hazardRow(m.items[i]) + "\n")
		}
		fmt.Fprintf(&b, "\n共 %d 条\n", len(m.items))

		if h, ok := m.current(); ok {
			b.WriteString("\n" + hazardDetail(h))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("隐患数据管理", strings.TrimRight(b.String(), "\n"),
		"e: 编辑 │ l: 锁定 │ r: 刷新超期 │ i: 导入 │ x: 导出 │ c: 复制单号 │ esc: 返回 │ L: 退出登录")
}

func hazardRow(h models.Hazard) string {
	cells := []string{
		strconv.FormatInt(h.ID, 10),
		valueOrDash(h.SubProcessNumber),
		valueOrDash(h.FactoryArea),
		valueOrDash(h.HazardType),
		valueOrDash(h.ResponsiblePerson),
		valueOrDash(h.Deadline),
		valueOrDash(h.Progress),
	}
	for i := range cells {
		cells[i] = padText(cells[i], hazardColumns[i].width)
	}

	return strings.Join(cells, " │ ") + " │ " + hazardState(h)
}

func hazardState(h models.Hazard) string {
	var parts []string
	if h.ManualLock {
		parts = append(parts, lockedStyle.Render("[锁]"))
	}
	if h.Overdue() {
		parts = append(parts, overdueStyle.Render(fmt.Sprintf("⚠ %d天", h.OverdueDays)))
	}
	return strings.Join(parts, " ")
}

func hazardDetail(h models.Hazard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "主流程单号: %s\n", valueOrDash(h.MainProcessNumber))
	fmt.Fprintf(&b, "创建人: %s  检查日期: %s\n", valueOrDash(h.Initiator), valueOrDash(h.InspectionDate))
	fmt.Fprintf(&b, "位置: %s\n", valueOrDash(h.Location))
	fmt.Fprintf(&b, "描述: %s\n", fitText(valueOrDash(h.Description), 100))
	fmt.Fprintf(&b, "责任部门: %s  当前处理人: %s\n", valueOrDash(h.ResponsibleDepartment), valueOrDash(h.CurrentHandler))
	fmt.Fprintf(&b, "归档日期: %s  扣分: %s", valueOrDash(h.CompletionDate), yesNo(h.DeductPoints))
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "是"
	}
	return "否"
}

const (
	hazardFieldPerson = iota
	hazardFieldDeadline
)

// hazardFormModel edits the responsible person and deadline of one hazard.
type hazardFormModel struct {
	form       formInputs
	original   models.Hazard
	submitting bool
}

func newHazardFormModel(h models.Hazard) hazardFormModel {
	form := newFormInputs("整改责任人", "YYYY-MM-DD")
	form.inputs[hazardFieldPerson].SetValue(h.ResponsiblePerson)
	form.inputs[hazardFieldDeadline].SetValue(h.Deadline)
	return hazardFormModel{form: form, original: h}
}

// patch returns the fields that differ from the edited hazard.
func (m hazardFormModel) patch() models.HazardPatch {
	var p models.HazardPatch
	if person := strings.TrimSpace(m.form.value(hazardFieldPerson)); person != m.original.ResponsiblePerson {
		p.ResponsiblePerson = &person
	}
	if deadline := strings.TrimSpace(m.form.value(hazardFieldDeadline)); deadline != m.original.Deadline {
		p.Deadline = &deadline
	}
	return p
}

func (m hazardFormModel) View() string {
	out := "单据编号: " + valueOrDash(m.original.SubProcessNumber) + "\n\n"
	out += m.form.row("整改责任人:", hazardFieldPerson)
	out += m.form.row("整改期限:  ", hazardFieldDeadline)
	if m.submitting {
		out += "\n保存中..."
	}
	return renderPage("编辑隐患", out, "enter: 保存 │ tab: 下一项 │ esc: 取消")
}
