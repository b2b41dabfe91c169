package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/gpu-layout/layout"
	"github.com/wippyai/gpu-layout/schema"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type browserModel struct {
	filename string
	structs  []*layout.Type
	visible  []*layout.Type
	calcs    [len(layout.Standards)]*layout.Calculator
	filter   textinput.Model
	selected int
	std      layout.Standard
}

func newBrowserModel(filename string, s *schema.Schema, std layout.Standard) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter structs"
	ti.Prompt = "/ "
	ti.Width = 30
	ti.Focus()

	m := &browserModel{
		filename: filename,
		structs:  s.Structs(),
		filter:   ti,
		std:      std,
	}
	for _, st := range layout.Standards {
		m.calcs[st] = layout.NewCalculator(st)
	}
	m.applyFilter()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for _, t := range m.structs {
		if q == "" || strings.Contains(strings.ToLower(t.Name), q) {
			m.visible = append(m.visible, t)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *browserModel) current() *layout.Type {
	if len(m.visible) == 0 {
		return nil
	}
	return m.visible[m.selected]
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "tab":
			m.std = (m.std + 1) % layout.Standard(len(layout.Standards))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GLSL Layout"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(emptyStyle.Render("No structs match."))
		b.WriteString("\n")
	}
	for i, t := range m.visible {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + t.Name))
		} else {
			b.WriteString("  " + t.Name)
		}
		b.WriteString("\n")
	}

	if t := m.current(); t != nil {
		b.WriteString("\n")
		b.WriteString(renderStruct(m.calcs[m.std], t))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • tab std140/std430 • esc quit"))
	return b.String()
}

func runInteractive(filename string, s *schema.Schema, std layout.Standard) error {
	p := tea.NewProgram(newBrowserModel(filename, s, std), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
