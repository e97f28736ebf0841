// Package preview is a small terminal viewer for a generated dashboard
// file. It lists every panel with its id, type, grid rectangle and query
// count so a dashboard can be sanity-checked before importing it into
// Grafana.
package preview

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/jsonutil"
)

// Load reads and parses a generated dashboard file.
func Load(path string) (grafana.Dashboard, error) {
	var d grafana.Dashboard
	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("read dashboard: %w", err)
	}
	if err := jsonutil.UnmarshalWithContext(data, &d, "parse dashboard"); err != nil {
		return d, err
	}
	return d, nil
}

// panelItem implements list.Item for one panel.
type panelItem struct {
	p grafana.Panel
}

func (i panelItem) FilterValue() string { return i.p.Title }

func (i panelItem) Title() string {
	if i.p.Type == "row" {
		return fmt.Sprintf("── %s ──", i.p.Title)
	}
	return fmt.Sprintf("%s  [%s]", i.p.Title, i.p.Type)
}

func (i panelItem) Description() string {
	g := i.p.GridPos
	desc := fmt.Sprintf("id %d  %dx%d at (%d,%d)", i.p.ID, g.W, g.H, g.X, g.Y)
	if n := len(i.p.Targets); n == 1 {
		desc += ", 1 query"
	} else if n > 1 {
		desc += fmt.Sprintf(", %d queries", n)
	}
	return desc
}

// Model is the bubbletea model of the viewer.
type Model struct {
	list list.Model
}

// NewModel builds the viewer for a parsed dashboard.
func NewModel(d grafana.Dashboard) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	delegate.Styles.NormalDesc = delegate.Styles.NormalTitle

	items := make([]list.Item, 0, len(d.Panels))
	for _, p := range d.Panels {
		items = append(items, panelItem{p: p})
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = d.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	return Model{list: l}
}

// PanelCount returns the number of listed panels.
func (m Model) PanelCount() int {
	return len(m.list.Items())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. q and ctrl+c quit; the list handles
// j/k/g/G navigation natively.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("j/k: navigate  q: quit")
	return m.list.View() + "\n" + hint
}
