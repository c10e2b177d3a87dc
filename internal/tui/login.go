// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/hazard-keeper/internal/service"
)

const (
	loginUsername = iota
	loginPassword
)

// loginModel is the login screen: a username and a masked password input.
type loginModel struct {
	form       formInputs
	submitting bool
}

func newLoginModel() loginModel {
	form := newFormInputs("用户名", "密码")
	form.inputs[loginUsername].CharLimit = 64
	form.inputs[loginPassword].CharLimit = 256
	form.inputs[loginPassword].EchoMode = textinput.EchoPassword
	form.inputs[loginPassword].EchoCharacter = '*'
	return loginModel{form: form}
}

func (m loginModel) View() string {
	out := m.form.row("用户名:", loginUsername)
	out += m.form.row("密码:  ", loginPassword)
	if m.submitting {
		out += "\n登录中..."
	}
	return renderPage("隐患管理数据分析系统", out, "enter: 登录 │ tab: 下一项")
}

func loginErrorText(err error) string {
	if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrEmptyCredentials) {
		return "用户名或密码错误"
	}
	return err.Error()
}
