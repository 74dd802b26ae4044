/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// Package tui is an interactive terminal form for editing the parameters of a
// config before saving it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/form"
)

const (
	title        = "MetaPepticon Config Generator"
	inputWidth   = 48
	labelWidth   = 46
	unknownSize  = "?"
	noSamplesMsg = "(no samples found)"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00")).
			Padding(0, 2).
			Bold(true)

	detectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true).
			MarginBottom(1)

	groupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1)

	groupTitleStyle = lipgloss.NewStyle().
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Width(labelWidth)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("#2563EB")).
				Bold(true)

	sampleNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399"))

	readOnlyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

type sampleRow struct {
	name  string
	size  string
	value string
}

// Model is the bubbletea model of the form.
type Model struct {
	form    *form.Form
	fields  []form.Field
	inputs  []textinput.Model
	focus   int
	samples []sampleRow

	saved    string
	err      error
	quitting bool
}

// New returns a Model for editing the given form. fs is used to show the size
// of each sample.
func New(f *form.Form, fs afero.Fs) Model {
	fields := f.Fields()
	inputs := make([]textinput.Model, len(fields))

	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = inputWidth
		ti.SetValue(field.Value)
		inputs[i] = ti
	}

	m := Model{
		form:    f,
		fields:  fields,
		inputs:  inputs,
		samples: sampleRows(f, fs),
	}

	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	return m
}

func sampleRows(f *form.Form, fs afero.Fs) []sampleRow {
	found := f.Samples()
	rows := make([]sampleRow, len(found))

	for i, s := range found {
		size := unknownSize

		if n, err := s.Size(fs, f.Root()); err == nil {
			size = humanize.Bytes(uint64(n)) //nolint:gosec
		}

		rows[i] = sampleRow{name: s.Name, size: size, value: s.Descriptor()}
	}

	return rows
}

// Saved returns the path the config was saved to, or blank if it wasn't.
func (m Model) Saved() string {
	return m.saved
}

// Err returns the error from the last save attempt, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true

		return m, tea.Quit
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "ctrl+s":
		return m.save()
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m.save()
		}

		return m.moveFocus(1)
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if err := m.form.Set(m.fields[m.focus].Name, m.inputs[m.focus].Value()); err != nil {
		m.err = err
	}

	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}

	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)

	return m, m.inputs[m.focus].Focus()
}

func (m Model) save() (tea.Model, tea.Cmd) {
	path, err := m.form.Save()
	if err != nil {
		m.err = err

		return m, nil
	}

	m.saved = path
	m.err = nil

	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.saved != "" || m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(detectedStyle.Render(fmt.Sprintf("Detected input_type: %s (%s)",
		m.form.InputType(), m.form.InputType().Description())) + "\n")

	for _, group := range m.groups() {
		b.WriteString(groupStyle.Render(m.groupView(group)) + "\n")
	}

	b.WriteString(groupStyle.Render(m.samplesView()) + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(helpStyle.Render("tab/↓ next • shift+tab/↑ previous • ctrl+s save • esc quit"))

	return b.String()
}

// groups returns the field group names in the order they first appear.
func (m Model) groups() []string {
	var groups []string

	seen := make(map[string]bool)

	for _, f := range m.fields {
		if !seen[f.Group] {
			seen[f.Group] = true
			groups = append(groups, f.Group)
		}
	}

	return groups
}

func (m Model) groupView(group string) string {
	lines := []string{groupTitleStyle.Render(group)}

	for i, f := range m.fields {
		if f.Group != group {
			continue
		}

		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}

		lines = append(lines, style.Render(f.Label)+m.inputs[i].View())
	}

	return strings.Join(lines, "\n")
}

func (m Model) samplesView() string {
	lines := []string{groupTitleStyle.Render("Samples")}

	if len(m.samples) == 0 {
		lines = append(lines, readOnlyStyle.Render(noSamplesMsg))
	}

	for _, s := range m.samples {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			sampleNameStyle.Render(s.name), readOnlyStyle.Render("("+s.size+")"),
			readOnlyStyle.Render(s.value)))
	}

	return strings.Join(lines, "\n")
}
