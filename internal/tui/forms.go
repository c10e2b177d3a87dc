// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formInputs is a column of text inputs with one focused field.
type formInputs struct {
	inputs []textinput.Model
	focus  int
}

func newFormInputs(placeholders ...string) formInputs {
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = p
		inputs[i].Width = 40
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return formInputs{inputs: inputs}
}

func (f formInputs) next() formInputs {
	return f.move(1)
}

func (f formInputs) prev() formInputs {
	return f.move(-1)
}

func (f formInputs) move(delta int) formInputs {
	if len(f.inputs) == 0 {
		return f
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f formInputs) value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

func (f formInputs) update(msg tea.Msg) (formInputs, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formInputs) row(label string, i int) string {
	return label + " [" + f.inputs[i].View() + "]\n"
}
