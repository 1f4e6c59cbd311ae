package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxRuns is how many runs the browser loads per ordering.
const maxRuns = 100

// RunOrder selects how the browser sorts runs.
type RunOrder int

const (
	OrderTop RunOrder = iota
	OrderRecent
)

// String returns the title of the ordering.
func (o RunOrder) String() string {
	if o == OrderRecent {
		return "RECENT RUNS"
	}
	return "TOP RUNS"
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Select, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top/recent"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// runColumns returns the table layout shared by the browser and plain listings.
func runColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Source", Width: 14},
		{Title: "Date", Width: 14},
	}
}

func runRows(runs []storage.RunSummary) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Seed),
			r.Source,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// RenderRunsTable renders runs as a static table for non-interactive output.
func RenderRunsTable(runs []storage.RunSummary) string {
	if len(runs) == 0 {
		return "No runs recorded yet."
	}

	t := table.New(
		table.WithColumns(runColumns()),
		table.WithRows(runRows(runs)),
		table.WithHeight(len(runs)+2), // Header plus its border
	)
	s := tableStyles()
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t.View()
}

// RunsModel is the Bubble Tea model for browsing stored runs.
type RunsModel struct {
	store    *storage.Store
	order    RunOrder
	runs     []storage.RunSummary
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	selected int64
	err      error
	quitting bool
}

// NewRunsModel creates a runs browser.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	m := RunsModel{
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *RunsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(runColumns()),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-6, 3)),
	)
	t.SetStyles(tableStyles())
	return t
}

// loadRuns reloads runs for the current ordering.
func (m *RunsModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
	} else if m.order == OrderRecent {
		m.runs, m.err = m.store.RecentRuns(maxRuns)
	} else {
		m.runs, m.err = m.store.TopRuns(maxRuns)
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.order = (m.order + 1) % 2
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.runs) {
				m.selected = m.runs[c].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(m.order.String()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No runs recorded yet.\nPlay or simulate a game to record one!"))
	default:
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the ID of the run picked with enter, or 0.
func (m RunsModel) Selected() int64 {
	return m.selected
}

// BrowseRuns runs the browser and returns the selected run ID, or 0.
func BrowseRuns(store *storage.Store, width, height int) (int64, error) {
	p := tea.NewProgram(NewRunsModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(RunsModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
