package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/probemap/pkg/aggregate"
	"github.com/matzehuels/probemap/pkg/dataset"
	"github.com/matzehuels/probemap/pkg/layout"
	"github.com/matzehuels/probemap/pkg/render/theme"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	paneStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// ShowModel - Interactive diagram browser
// =============================================================================

// showPane selects which column of the diagram the cursor moves through.
type showPane int

const (
	paneCompanies showPane = iota
	paneAgencies
)

// ShowModel is the bubbletea model behind 'probemap show'. It lists one
// column of the diagram and, for the entry under the cursor, the entries of
// the other column it is connected to.
type ShowModel struct {
	Dataset *dataset.Dataset
	Layout  layout.Layout
	Theme   theme.Theme
	Pane    showPane
	Cursor  int
}

// NewShowModel creates a viewer positioned on the most investigated company.
func NewShowModel(ds *dataset.Dataset, l layout.Layout, t theme.Theme) ShowModel {
	return ShowModel{Dataset: ds, Layout: l, Theme: t}
}

func (m ShowModel) Init() tea.Cmd {
	return nil
}

// entries returns the names listed in the active pane. Companies follow the
// ranking, agencies their declaration order.
func (m ShowModel) entries() []string {
	if m.Pane == paneAgencies {
		return m.Dataset.AgencyNames()
	}
	return m.Layout.Ranking
}

func (m ShowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.entries())-1 {
				m.Cursor++
			}
		case "tab", "left", "right", "h", "l":
			if m.Pane == paneCompanies {
				m.Pane = paneAgencies
			} else {
				m.Pane = paneCompanies
			}
			m.Cursor = 0
		}
	}
	return m, nil
}

// agencyStyle colours an agency name with its edge colour.
func (m ShowModel) agencyStyle(name string) lipgloss.Style {
	for i, a := range m.Dataset.Agencies {
		if a.Name == name {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Theme.EdgeColor(i)))
		}
	}
	return listNormalStyle
}

// related lists what the selected entry connects to, with a heading.
func (m ShowModel) related(selected string) (string, []string) {
	if m.Pane == paneAgencies {
		var out []string
		for _, e := range m.Layout.Edges {
			if e.Agency == selected {
				out = append(out, e.Company)
			}
		}
		return "Investigates", out
	}
	return aggregate.Caption(m.Layout.Counts.Of(selected)), aggregate.Investigators(m.Dataset, selected)
}

func (m ShowModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Layout.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab switch column  q quit"))
	b.WriteString("\n\n")

	items := m.entries()
	if len(items) == 0 {
		b.WriteString(listDimStyle.Render("  (empty)"))
		return b.String()
	}

	var list strings.Builder
	heading := "Companies"
	if m.Pane == paneAgencies {
		heading = "Agencies"
	}
	list.WriteString(StyleHighlight.Render(heading))
	list.WriteString("\n")
	for i, name := range items {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := cursor + name
		if m.Pane == paneCompanies {
			line += listDimStyle.Render(fmt.Sprintf(" (%d)", m.Layout.Counts.Of(name)))
		}
		list.WriteString(style.Render(line))
		list.WriteString("\n")
	}

	selected := items[m.Cursor]
	title, rel := m.related(selected)
	var detail strings.Builder
	detail.WriteString(StyleHighlight.Render(title))
	detail.WriteString("\n")
	if len(rel) == 0 {
		detail.WriteString(listDimStyle.Render("none"))
	}
	for _, name := range rel {
		style := listNormalStyle
		if m.Pane == paneCompanies {
			style = m.agencyStyle(name)
		}
		detail.WriteString(style.Render("• " + name))
		detail.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(strings.TrimRight(list.String(), "\n")),
		" ",
		paneStyle.Render(strings.TrimRight(detail.String(), "\n")),
	))
	b.WriteString("\n")
	return b.String()
}
