// Terminal preview of a generated table, rendered with bubbletea.
package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"datasynth/internal/dataset"
	"datasynth/internal/export"
)

const (
	maxPreviewRows = 200
	maxColumnWidth = 24
	minColumnWidth = 6
	footerWidth    = 100
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

type model struct {
	table  table.Model
	footer string
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Height > 8 {
			m.table.SetHeight(msg.Height - 6)
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return baseStyle.Render(m.table.View()) + "\n" + footerStyle.Render(m.footer) + "\n"
}

// Run shows an interactive preview of the table head and blocks until
// the user quits.
func Run(t *dataset.Table) error {
	shown := t.Len()
	if shown > maxPreviewRows {
		shown = maxPreviewRows
	}

	rows := make([]table.Row, shown)
	widths := make([]int, len(t.Columns))
	for c, name := range t.Columns {
		widths[c] = len(name)
	}
	for i := 0; i < shown; i++ {
		row := make(table.Row, len(t.Columns))
		for c, v := range t.Rows[i] {
			s := export.CellString(v)
			if len(s) > widths[c] {
				widths[c] = len(s)
			}
			row[c] = s
		}
		rows[i] = row
	}

	columns := make([]table.Column, len(t.Columns))
	for c, name := range t.Columns {
		w := widths[c]
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if w < minColumnWidth {
			w = minColumnWidth
		}
		columns[c] = table.Column{Title: name, Width: w}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	tbl.SetStyles(styles)

	footer := wordwrap.String(
		fmt.Sprintf("%s: showing %d of %d rows, %d columns. Arrow keys scroll, q quits.",
			t.Name, shown, t.Len(), len(t.Columns)),
		footerWidth)

	_, err := tea.NewProgram(model{table: tbl, footer: footer}, tea.WithAltScreen()).Run()
	return err
}
