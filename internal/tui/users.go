// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/hazard-keeper/models"
)

type usersModel struct {
	items   []models.User
	idx     int
	rows    int
	loading bool
	status  string
}

func (m usersModel) current() (models.User, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.User{}, false
	}
	return m.items[m.idx], true
}

func (m usersModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("加载中...\n")
	case len(m.items) == 0:
		b.WriteString("暂无用户\n")
	default:
		fmt.Fprintf(&b, "  %s │ %s │ %s\n", padText("ID", 5), padText("用户名", 20), "角色")

		start, end := window(len(m.items), m.idx, m.rows)
		for i := start; i < end; i++ {
			u := m.items[i]
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s │ %s │ %s\n", cursor,
				padText(strconv.FormatInt(u.ID, 10), 5),
				padText(u.Username, 20),
				roleLabel(u.Role))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("用户管理", strings.TrimRight(b.String(), "\n"),
		"n: 添加 │ r: 切换角色 │ d: 删除 │ esc: 返回 │ L: 退出登录")
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return "管理员"
	case models.RoleUser:
		return "普通用户"
	default:
		return string(r)
	}
}

const (
	userFieldUsername = iota
	userFieldPassword
)

// userFormModel adds a credential. The role is switched with ctrl+r and
// starts as a plain user.
type userFormModel struct {
	form       formInputs
	role       models.Role
	submitting bool
}

func newUserFormModel() userFormModel {
	return userFormModel{
		form: newFormInputs("用户名", "密码"),
		role: models.RoleUser,
	}
}

func (m userFormModel) View() string {
	out := m.form.row("用户名:", userFieldUsername)
	out += m.form.row("密码:  ", userFieldPassword)
	out += "角色:   " + roleLabel(m.role) + "\n"
	if m.submitting {
		out += "\n保存中..."
	}
	return renderPage("添加新用户", out, "enter: 添加 │ tab: 下一项 │ ctrl+r: 切换角色 │ esc: 取消")
}
