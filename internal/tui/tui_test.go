package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/entraops/internal/catalog"
	"github.com/idilsaglam/entraops/internal/checklist"
	"github.com/idilsaglam/entraops/internal/ui"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingPrinter struct {
	got []checklist.Report
	err error
}

func (p *recordingPrinter) Print(_ context.Context, r checklist.Report) error {
	if p.err != nil {
		return p.err
	}
	p.got = append(p.got, r)
	return nil
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func newTestModel(opts ...func(*Options)) Model {
	o := Options{
		Catalog: catalog.Default(),
		ReportOptions: []checklist.ReportOption{
			checklist.WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC) }),
			checklist.WithIDFunc(func() string { return "report-test" }),
		},
	}
	for _, f := range opts {
		f(&o)
	}
	return New(o)
}

func TestDashboard_ToggleSelected(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, "break-glass", m.Selected())

	m = press(t, m, space)
	assert.True(t, m.Tracker().IsComplete("break-glass"))
	assert.Equal(t, 20, m.Stats().Rounded())

	m = press(t, m, space)
	assert.False(t, m.Tracker().IsComplete("break-glass"))
	assert.Equal(t, 0.0, m.Stats().Score)
}

func TestDashboard_CursorMovesAndClamps(t *testing.T) {
	m := newTestModel()
	m = press(t, m, runes("k"))
	assert.Equal(t, "break-glass", m.Selected())

	m = press(t, m, runes("j"), runes("j"))
	assert.Equal(t, "pim", m.Selected())

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, "service-principals", m.Selected())

	m = press(t, m, enter)
	assert.True(t, m.Tracker().IsComplete("service-principals"))
}

func TestDashboard_SearchFilters(t *testing.T) {
	m := newTestModel()
	m = press(t, m, runes("j"), runes("j"), runes("j")) // log-analytics
	m = press(t, m, runes("/"))
	require.True(t, m.searching)

	m = press(t, m, runes("pim"))
	assert.Equal(t, "pim", m.Query())
	vis := m.Visible()
	require.Len(t, vis, 1)
	assert.Equal(t, "Privileged Access", vis[0].Title)
	assert.Equal(t, "pim", m.Selected(), "cursor clamps into the filtered rows")

	// while searching, letters go to the input rather than the key map
	assert.False(t, m.Tracker().IsComplete("pim"))

	m = press(t, m, enter)
	assert.False(t, m.searching)
	assert.Equal(t, "pim", m.Query())

	m = press(t, m, space)
	assert.True(t, m.Tracker().IsComplete("pim"))

	m = press(t, m, runes("/"), esc)
	assert.Equal(t, "", m.Query())
	assert.Len(t, m.Visible(), 4)
}

func TestDashboard_SearchNoMatches(t *testing.T) {
	m := newTestModel()
	m = press(t, m, runes("/"), runes("zzz"), enter)
	assert.Empty(t, m.Visible())
	assert.Equal(t, "", m.Selected())

	m = press(t, m, space)
	assert.Equal(t, 0, m.Tracker().Len())
	assert.Contains(t, ui.StripANSI(m.View()), `no checks match "zzz"`)
}

func TestDashboard_ThemeToggle(t *testing.T) {
	m := newTestModel()
	assert.True(t, m.Dark())
	m = press(t, m, runes("t"))
	assert.False(t, m.Dark())
	m = press(t, m, runes("t"))
	assert.True(t, m.Dark())

	m = newTestModel(func(o *Options) { o.Theme = "light" })
	assert.False(t, m.Dark())
}

func TestDashboard_ReportAndPrint(t *testing.T) {
	p := &recordingPrinter{}
	m := newTestModel(func(o *Options) { o.Printer = p })
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = press(t, m, space, runes("j"), space) // break-glass, global-admins

	m = press(t, m, runes("r"))
	require.True(t, m.ReportOpen())
	assert.Equal(t, "report-test", m.snapshot.ID)
	assert.Equal(t, 40.0, m.snapshot.Score)

	// keys no longer reach the checklist
	m = press(t, m, space)
	assert.Equal(t, 2, m.Tracker().Len())

	m = press(t, m, runes("p"))
	require.Len(t, p.got, 1)
	assert.Equal(t, "report-test", p.got[0].ID)
	assert.Equal(t, "report printed", m.Status())
	assert.Contains(t, ui.StripANSI(m.View()), "report printed")

	m = press(t, m, esc)
	assert.False(t, m.ReportOpen())
}

func TestDashboard_PrintFailure(t *testing.T) {
	p := &recordingPrinter{err: errors.New("disk full")}
	m := newTestModel(func(o *Options) { o.Printer = p })
	m = press(t, m, runes("r"), runes("p"))
	assert.Equal(t, "print failed: disk full", m.Status())
	assert.True(t, m.ReportOpen())

	m = newTestModel()
	m = press(t, m, runes("r"), runes("p"))
	assert.Equal(t, "no printer configured", m.Status())
}

func TestDashboard_ReportSnapshotIsPointInTime(t *testing.T) {
	m := newTestModel()
	m = press(t, m, runes("r"), runes("q"))
	require.False(t, m.ReportOpen())
	assert.Equal(t, 0, m.snapshot.Completed)

	m = press(t, m, space, runes("r"))
	assert.Equal(t, 1, m.snapshot.Completed)
}

func TestDashboard_Quit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDashboard_View(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.WindowSizeMsg{Width: 160, Height: 80}, space)
	out := ui.StripANSI(m.View())

	for _, want := range []string{
		"Security Posture Dashboard",
		"Overall Score", "20%", "Action Needed",
		"Checks Passed", "1/5",
		"Critical Actions", "4",
		"Improving",
		"Emergency Access", "Operational Health",
		"Use PIM for all administrative roles",
		"Recommended",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDashboard_ViewWindowsShortTerminal(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.WindowSizeMsg{Width: 160, Height: 24})
	for i := 0; i < 4; i++ {
		m = press(t, m, runes("j"))
	}
	out := ui.StripANSI(m.View())
	assert.Contains(t, out, "Review Service Principal credentials")
	assert.LessOrEqual(t, strings.Count(out, "\n")+1, 40)
}

func TestDashboard_LogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newTestModel(func(o *Options) {
		o.Logger = zap.New(core)
		o.Printer = &recordingPrinter{}
	})
	m = press(t, m, space, runes("r"), runes("p"))

	toggles := logs.FilterMessage("toggle").All()
	require.Len(t, toggles, 1)
	assert.Equal(t, "break-glass", toggles[0].ContextMap()["id"])
	assert.Equal(t, true, toggles[0].ContextMap()["done"])

	assert.Equal(t, 1, logs.FilterMessage("report generated").Len())
	printed := logs.FilterMessage("report printed").All()
	require.Len(t, printed, 1)
	assert.Equal(t, "report-test", printed[0].ContextMap()["report_id"])
	assert.Equal(t, "report printed", m.Status())
}
