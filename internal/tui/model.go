// Package tui provides an interactive table view over schedule analysis
// results, built on bubbletea.
package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okabe/slipway/internal/cpm"
	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/forecast"
	"github.com/okabe/slipway/internal/usecase"
)

// viewMode selects which column set the table shows.
type viewMode int

const (
	viewTiming viewMode = iota
	viewDelay
)

// row is one activity's worth of display data.
type row struct {
	ID       int
	Name     string
	Timing   cpm.Result
	Forecast forecast.Result
}

// Model is the bubbletea model for the analysis viewer.
type Model struct {
	table  table.Model
	help   help.Model
	keys   KeyMap
	styles Styles

	rows         []row
	mode         viewMode
	criticalOnly bool
	title        string
	width        int
	height       int
}

// New creates a Model from a completed analysis.
func New(title string, activities []domain.Activity, out *usecase.AnalyzeScheduleOutput) Model {
	names := make(map[int]string, len(activities))
	for _, a := range activities {
		if id, ok := a.ParsedID(); ok {
			names[id] = a.Name
		}
	}

	rows := make([]row, 0, len(out.Timing))
	for id, t := range out.Timing {
		rows = append(rows, row{
			ID:       id,
			Name:     names[id],
			Timing:   t,
			Forecast: out.Forecast[id],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	m := Model{
		help:   help.New(),
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		rows:   rows,
		title:  title,
	}
	m.table = table.New(
		table.WithFocused(true),
		table.WithStyles(tableStyles()),
	)
	m.rebuildTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(3, msg.Height-6))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleView):
			if m.mode == viewTiming {
				m.mode = viewDelay
			} else {
				m.mode = viewTiming
			}
			m.rebuildTable()
			return m, nil
		case key.Matches(msg, m.keys.CriticalOnly):
			m.criticalOnly = !m.criticalOnly
			m.rebuildTable()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := m.styles.Header.Render(m.title)
	note := ""
	if m.criticalOnly {
		note = m.styles.HeaderNote.Render(" (critical path only)")
	}
	footer := m.styles.Footer.Render(m.help.View(m.keys))
	return m.styles.App.Render(header + note + "\n" + m.table.View() + "\n" + footer)
}

// rebuildTable regenerates columns and rows for the current mode and filter.
func (m *Model) rebuildTable() {
	var cols []table.Column
	switch m.mode {
	case viewTiming:
		cols = []table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 24},
			{Title: "Dur", Width: 4},
			{Title: "Start", Width: 11},
			{Title: "Finish", Width: 11},
			{Title: "Float", Width: 6},
			{Title: "Crit", Width: 5},
		}
	case viewDelay:
		cols = []table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 24},
			{Title: "Pct", Width: 5},
			{Title: "F.Finish", Width: 11},
			{Title: "Carried", Width: 8},
			{Title: "Total", Width: 6},
			{Title: "Created", Width: 8},
		}
	}

	var trows []table.Row
	for _, r := range m.rows {
		if m.criticalOnly && !r.Timing.OnCriticalPath {
			continue
		}
		switch m.mode {
		case viewTiming:
			trows = append(trows, table.Row{
				fmt.Sprintf("%d", r.ID),
				r.Name,
				fmt.Sprintf("%d", r.Timing.Duration),
				fmtDate(r.Timing.ESDate),
				fmtDate(r.Timing.EFDate),
				fmt.Sprintf("%d", r.Timing.TotalFloat),
				critMark(r.Timing.OnCriticalPath),
			})
		case viewDelay:
			trows = append(trows, table.Row{
				fmt.Sprintf("%d", r.ID),
				r.Name,
				fmt.Sprintf("%d%%", r.Forecast.PercentComplete),
				fmtDate(r.Forecast.ForecastFinish),
				fmt.Sprintf("%d", r.Forecast.DelayCarriedIn),
				fmt.Sprintf("%d", r.Forecast.TotalScheduleDelay),
				fmt.Sprintf("%d", r.Forecast.TaskCreatedDelay),
			})
		}
	}

	m.table.SetColumns(cols)
	m.table.SetRows(trows)
}

func critMark(critical bool) string {
	if critical {
		return "✓"
	}
	return ""
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
