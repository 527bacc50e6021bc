package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webstart/internal/ui"
	"webstart/pkg/catalog"
)

// pickerModel is the Bubble Tea model behind the interactive template
// selector: cursor keys to move, type to filter, enter to choose.
type pickerModel struct {
	templates []catalog.Template
	cursor    int
	filter    string
	choice    int
	cancelled bool

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	dimStyle      lipgloss.Style
	helpStyle     lipgloss.Style
}

func newPickerModel(templates []catalog.Template) pickerModel {
	return pickerModel{
		templates:     templates,
		choice:        -1,
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.ColorBlue)),
		selectedStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.ColorBlue)),
		dimStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray)),
		helpStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray)),
	}
}

// filtered returns the indices of the templates matching the filter text.
func (m pickerModel) filtered() []int {
	if m.filter == "" {
		indices := make([]int, len(m.templates))
		for i := range m.templates {
			indices[i] = i
		}
		return indices
	}

	filter := strings.ToLower(m.filter)
	var indices []int
	for i, t := range m.templates {
		if strings.Contains(strings.ToLower(t.Name), filter) ||
			strings.Contains(strings.ToLower(t.Description), filter) {
			indices = append(indices, i)
		}
	}
	return indices
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			visible := m.filtered()
			if len(visible) > 0 {
				m.choice = visible[m.cursor]
				return m, tea.Quit
			}

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down":
			if m.cursor < len(m.filtered())-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.cursor = 0
			}

		default:
			// Type-to-filter.
			if len(msg.String()) == 1 {
				m.filter += msg.String()
				m.cursor = 0
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.cancelled || m.choice >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.titleStyle.Render("Select a template"))
	b.WriteString("\n\n")

	visible := m.filtered()
	if len(visible) == 0 {
		b.WriteString(m.dimStyle.Render(fmt.Sprintf("  no templates match %q", m.filter)))
		b.WriteString("\n")
	}
	for i, idx := range visible {
		t := m.templates[idx]
		line := fmt.Sprintf("[%d] %s", idx, t.Name)
		if t.Description != "" {
			line += "  " + t.Description
		}
		if i == m.cursor {
			b.WriteString(m.selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	help := "enter: choose | esc: cancel"
	if m.filter != "" {
		help = fmt.Sprintf("filter: %s | %s", m.filter, help)
	}
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

// PickTemplate runs the interactive selector and returns the chosen
// catalog index.
func PickTemplate(templates []catalog.Template) (int, bool, error) {
	p := tea.NewProgram(newPickerModel(templates))

	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m := final.(pickerModel)
	if m.cancelled || m.choice < 0 {
		return 0, true, nil
	}
	return m.choice, false, nil
}
