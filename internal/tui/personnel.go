// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/hazard-keeper/models"
)

// stillActive is shown instead of an empty end date.
const stillActive = "至今"

type personnelModel struct {
	items   []models.Personnel
	idx     int
	rows    int
	loading bool
	status  string
}

func (m personnelModel) current() (models.Personnel, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Personnel{}, false
	}
	return m.items[m.idx], true
}

func (m personnelModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case len(m.items) == 0:
		b.WriteString("暂无人员数据，按 i 导入 Excel 文件\n")
	default:
		fmt.Fprintf(&b, "  %s │ %s │ %s │ %s │ %s\n",
			padText("ID", 5), padText("姓名", 10), padText("部门", 16), padText("开始日期", 10), "结束日期")

		start, end := window(len(m.items), m.idx, m.rows)
		for i := start; i < end; i++ {
			p := m.items[i]
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s │ %s │ %s │ %s │ %s\n", cursor,
				padText(strconv.FormatInt(p.ID, 10), 5),
				padText(valueOrDash(p.Name), 10),
				padText(valueOrDash(p.Department), 16),
				padText(valueOrDash(p.StartDate), 10),
				endDateText(p))
		}
		fmt.Fprintf(&b, "\n共 %d 人\n", len(m.items))
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("人员信息库管理", strings.TrimRight(b.String(), "\n"),
		"i: 导入 │ d: 删除 │ esc: 返回 │ L: 退出登录")
}

func endDateText(p models.Personnel) string {
	if p.Active() {
		return stillActive
	}
	return p.EndDate
}
