package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// RunsKeyMap defines key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Verify key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRunsKeyMap returns the default runs browser bindings.
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
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	runsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	runsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	statusOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusFail = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// runColumns returns the runs table columns.
func runColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Variant", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Grid", Width: 9},
		{Title: "End", Width: 18},
		{Title: "Date", Width: 14},
	}
}

// runRows converts stored runs to table rows.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Variant,
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Ticks, 10),
			fmt.Sprintf("%dx%d %s", r.Width, r.Height, policyMark(r.Policy)),
			endLabel(r.EndReason),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func policyMark(policy string) string {
	if policy == "bounded" {
		return "#"
	}
	return "~"
}

// endLabel names how a run ended. Runs journaled on quit end with "none".
func endLabel(reason string) string {
	if reason == "none" {
		return "abandoned"
	}
	return reason
}

func newRunsTable(runs []storage.Run, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(runColumns()),
		table.WithRows(runRows(runs)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

// RunsTable renders runs as a static table for non-interactive output.
func RunsTable(runs []storage.Run) string {
	if len(runs) == 0 {
		return "No runs recorded yet.\n"
	}
	return newRunsTable(runs, len(runs)+1, false).View() + "\n"
}

// RunsModel is the Bubble Tea model for browsing and verifying stored runs.
type RunsModel struct {
	runs     []storage.Run
	logger   *log.Logger
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	status   string
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a runs browser over the given runs.
func NewRunsModel(runs []storage.Run, logger *log.Logger, width, height int) RunsModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return RunsModel{
		runs:   runs,
		logger: logger,
		table:  newRunsTable(runs, max(height-8, 3), true),
		help:   help.New(),
		keys:   DefaultRunsKeyMap(),
		width:  width,
		height: height,
	}
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
		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = newRunsTable(m.runs, max(m.height-8, 3), true)
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// verifySelected re-simulates the selected run and sets the status line.
func (m *RunsModel) verifySelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return
	}
	run := m.runs[i]

	rec, err := run.Record()
	if err == nil {
		_, err = replay.Verify(rec)
	}
	if err != nil {
		m.status = statusFail.Render(fmt.Sprintf("run %d: %v", run.ID, err))
		m.logger.Warn("replay verification failed", "id", run.ID, "error", err)
		return
	}
	m.status = statusOK.Render(fmt.Sprintf("run %d verified: score %d after %d ticks", run.ID, run.Score, run.Ticks))
	m.logger.Info("replay verified", "id", run.ID, "score", run.Score)
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(runsTitleStyle.Render(fmt.Sprintf("RECORDED RUNS (%d)", len(m.runs))))
	b.WriteString("\n\n")
	if len(m.runs) == 0 {
		b.WriteString(runsBoxStyle.Render("No runs recorded yet.\nPlay a game to record one!"))
	} else {
		b.WriteString(runsBoxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunRuns runs the interactive runs browser.
func RunRuns(runs []storage.Run, logger *log.Logger, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(runs, logger, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
