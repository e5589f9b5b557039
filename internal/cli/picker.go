package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/depscope/depscope/pkg/depgraph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// packageListModel is the bubbletea model for interactive root selection.
type packageListModel struct {
	packages []string
	cursor   int
	height   int
	offset   int
	selected string
}

func newPackageListModel(packages []string) packageListModel {
	return packageListModel{
		packages: packages,
		height:   15,
	}
}

func (m packageListModel) Init() tea.Cmd {
	return nil
}

func (m packageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.packages)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.packages[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m packageListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select root package"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.packages))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + m.packages[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + m.packages[i]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickPackage shows an interactive list of the source's packages and returns
// the selection, or the empty string when the user quits without choosing.
func pickPackage(src depgraph.Source) (string, error) {
	final, err := tea.NewProgram(newPackageListModel(src.Packages())).Run()
	if err != nil {
		return "", fmt.Errorf("package picker: %w", err)
	}
	m, ok := final.(packageListModel)
	if !ok {
		return "", fmt.Errorf("package picker: unexpected model type %T", final)
	}
	return m.selected, nil
}
