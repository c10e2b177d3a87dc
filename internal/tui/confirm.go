// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "删除 \"" + m.message + "\"？\n\n"
	content += "y 是    n 否"
	return overlayBoxStyle.Render(content)
}
