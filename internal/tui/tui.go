// Package tui is the interactive dashboard: stat cards, the category
// checklist with live search, and the report modal.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/entraops/internal/checklist"
	"github.com/idilsaglam/entraops/internal/model"
	"github.com/idilsaglam/entraops/internal/report"
	"github.com/idilsaglam/entraops/internal/ui"
)

// Options configure a new dashboard. Printer and Logger may be nil.
type Options struct {
	Catalog model.Catalog
	Tracker *checklist.Tracker
	Theme   string
	Printer report.Printer
	Logger  *zap.Logger

	// ReportOptions are passed to checklist.BuildReport.
	ReportOptions []checklist.ReportOption
}

// Model owns the whole application state. Every mutation is followed by a
// fresh derivation in View; nothing is cached.
type Model struct {
	catalog model.Catalog
	done    *checklist.Tracker
	theme   ui.Theme

	search    textinput.Model
	searching bool
	cursor    int

	reportOpen bool
	snapshot   checklist.Report
	viewer     viewport.Model
	printer    report.Printer
	reportOpts []checklist.ReportOption

	status string
	keys   keyMap
	help   help.Model
	width  int
	height int
	log    *zap.Logger
}

func New(opt Options) Model {
	tr := opt.Tracker
	if tr == nil {
		tr = checklist.NewTracker()
	}
	lg := opt.Logger
	if lg == nil {
		lg = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search checks..."
	ti.CharLimit = 120
	ti.Width = 30

	return Model{
		catalog:    opt.Catalog,
		done:       tr,
		theme:      ui.ThemeFor(opt.Theme),
		search:     ti,
		viewer:     viewport.New(80, 20),
		printer:    opt.Printer,
		reportOpts: opt.ReportOptions,
		keys:       defaultKeys(),
		help:       help.New(),
		width:      80,
		height:     24,
		log:        lg,
	}
}

// Run starts the dashboard and returns the final state.
func Run(opt Options) (Model, error) {
	p := tea.NewProgram(New(opt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Tracker exposes the completion set, e.g. for a summary after exit.
func (m Model) Tracker() *checklist.Tracker { return m.done }

func (m Model) Query() string { return m.search.Value() }

func (m Model) Dark() bool { return m.theme.Dark }

func (m Model) ReportOpen() bool { return m.reportOpen }

func (m Model) Status() string { return m.status }

// Stats derives the current aggregates.
func (m Model) Stats() checklist.Stats { return checklist.ComputeStats(m.catalog, m.done) }

// Visible returns the catalog as filtered by the current query.
func (m Model) Visible() model.Catalog { return checklist.FilterCatalog(m.catalog, m.search.Value()) }

// rows flattens the filtered view into the selectable items.
func (m Model) rows() []model.Item {
	var out []model.Item
	for _, cat := range m.Visible() {
		out = append(out, cat.Items...)
	}
	return out
}

// Selected is the id under the cursor, or "" when nothing matches.
func (m Model) Selected() string {
	rs := m.rows()
	if m.cursor < 0 || m.cursor >= len(rs) {
		return ""
	}
	return rs[m.cursor].ID
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeViewer()
		if m.reportOpen {
			m.renderReport()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.reportOpen:
			return m.updateReport(msg)
		case m.searching:
			return m.updateSearch(msg)
		}
		return m.updateDashboard(msg)
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if id := m.Selected(); id != "" {
			now := m.done.Toggle(id)
			m.log.Debug("toggle", zap.String("id", id), zap.Bool("done", now))
		}
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.status = ""
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.log.Debug("theme", zap.String("name", m.theme.Name))
		if m.reportOpen {
			m.renderReport()
		}
	case key.Matches(msg, m.keys.Report):
		m.openReport()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.searching = false
		m.clampCursor()
		return m, nil
	case "enter":
		m.search.Blur()
		m.searching = false
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	m.log.Debug("search", zap.String("query", m.search.Value()), zap.Int("matches", len(m.rows())))
	return m, cmd
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Print):
		m.print()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.reportOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.renderReport()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	return m, cmd
}

func (m *Model) openReport() {
	m.snapshot = checklist.BuildReport(m.catalog, m.done, m.reportOpts...)
	m.reportOpen = true
	m.status = ""
	m.resizeViewer()
	m.renderReport()
	m.log.Info("report generated",
		zap.String("report_id", m.snapshot.ID),
		zap.Float64("score", m.snapshot.Score),
		zap.Int("incomplete", len(m.snapshot.Incomplete)),
	)
}

func (m *Model) renderReport() {
	out, err := report.Render(m.snapshot, m.theme.Dark, m.viewer.Width-2)
	if err != nil {
		m.log.Warn("render report", zap.Error(err))
		out = report.Markdown(m.snapshot)
	}
	m.viewer.SetContent(out)
	m.viewer.GotoTop()
}

func (m *Model) resizeViewer() {
	w, h := m.width-6, m.height-8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.viewer.Width, m.viewer.Height = w, h
}

// print hands the open snapshot to the printer. It runs inline on the event
// loop; printers only write a file or a buffer.
func (m *Model) print() {
	if m.printer == nil {
		m.status = "no printer configured"
		return
	}
	if err := m.printer.Print(context.Background(), m.snapshot); err != nil {
		m.status = "print failed: " + err.Error()
		m.log.Error("print report", zap.String("report_id", m.snapshot.ID), zap.Error(err))
		return
	}
	m.status = "report printed"
	m.log.Info("report printed", zap.String("report_id", m.snapshot.ID))
}
