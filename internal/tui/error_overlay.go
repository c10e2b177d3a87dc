// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("错误") + "\n\n" + m.message + "\n\nenter / esc 关闭"
	return overlayBoxStyle.Render(content)
}
