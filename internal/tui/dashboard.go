// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/models"
)

var routeTitles = map[session.Route]string{
	session.RouteHazards:   "隐患管理",
	session.RoutePersonnel: "人员信息库",
	session.RouteUsers:     "用户管理",
}

// dashboardModel is the role-dependent main menu. The last entry logs out.
type dashboardModel struct {
	routes []session.Route
	role   models.Role
	idx    int
}

func newDashboardModel(gate *session.Gate, s models.Session) dashboardModel {
	return dashboardModel{routes: gate.Routes(s), role: s.Role}
}

func (m dashboardModel) size() int {
	return len(m.routes) + 1
}

// selected returns the chosen route, or false for the logout entry.
func (m dashboardModel) selected() (session.Route, bool) {
	if m.idx < len(m.routes) {
		return m.routes[m.idx], true
	}
	return "", false
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("欢迎，%s\n\n", roleTitle(m.role)))
	items := make([]string, 0, m.size())
	for _, r := range m.routes {
		items = append(items, routeTitles[r])
	}
	items = append(items, "退出登录")

	for i, item := range items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	return renderPage("隐患管理数据分析系统", strings.TrimRight(b.String(), "\n"), "enter: 选择 │ ↑/↓: 导航 │ v: 版本 │ q: 退出")
}

func roleTitle(r models.Role) string {
	if r == models.RoleAdmin {
		return "管理员"
	}
	return "用户"
}
