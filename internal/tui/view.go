package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/entraops/internal/checklist"
	"github.com/idilsaglam/entraops/internal/ui"
)

func (m Model) View() string {
	if m.reportOpen {
		return m.reportView()
	}

	st := m.Stats()
	header := m.headerView()
	cards := m.cardsView(st)
	footer := m.footerView()

	used := lipgloss.Height(header) + lipgloss.Height(cards) + lipgloss.Height(footer) + 2
	body := m.bodyView(m.height - used)

	return strings.Join([]string{header, cards, body, footer}, "\n")
}

func (m Model) headerView() string {
	t := m.theme
	brand := t.Accent.Render(ui.IconShieldAlert.Glyph()) + " " + t.Title.Render("Entra") + t.Accent.Render("Ops")
	mode := "☾ dark"
	if !t.Dark {
		mode = "☀ light"
	}
	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = t.Muted.Render("/ search checks...")
	}
	return fmt.Sprintf("%s   %s   %s\n%s",
		brand, search, t.Muted.Render(mode),
		t.Title.Render("Security Posture Dashboard"))
}

func (m Model) cardsView(st checklist.Stats) string {
	t := m.theme
	card := func(title, value, sub string) string {
		lines := []string{t.Muted.Render(title), t.Title.Render(value)}
		if sub != "" {
			lines = append(lines, t.Badge.Render(sub))
		}
		return ui.PanelString(t, lines)
	}
	status := ui.PanelString(t, []string{
		t.Muted.Render("Status"),
		t.Title.Render(st.Status()),
		ui.ProgressBar(t, st.Score, 12),
	})
	return ui.Row(
		card("Overall Score", fmt.Sprintf("%d%%", st.Rounded()), st.Verdict()),
		card("Checks Passed", fmt.Sprintf("%d/%d", st.Completed, st.Total), ""),
		card("Critical Actions", fmt.Sprintf("%d", len(st.Incomplete)), "High Priority"),
		status,
	)
}

// bodyView renders the filtered categories, windowed so the cursor stays
// on screen when the terminal is short.
func (m Model) bodyView(avail int) string {
	t := m.theme
	visible := m.Visible()
	if len(visible) == 0 {
		return t.Muted.Render(fmt.Sprintf("no checks match %q", m.search.Value()))
	}

	var lines []string
	cursorLine := 0
	idx := 0
	for _, cat := range visible {
		icon := ui.ParseIcon(cat.Icon)
		lines = append(lines, "",
			t.Accent.Render(icon.Glyph())+" "+t.Title.Render(cat.Title)+"  "+t.Muted.Render(cat.Description))
		for _, it := range cat.Items {
			prefix := "  "
			if idx == m.cursor {
				prefix = t.Selected.Render("> ")
				cursorLine = len(lines)
			}
			box, text := t.Muted.Render(t.BoxUnchecked), it.Text
			if m.done.IsComplete(it.ID) {
				box, text = t.Success.Render(t.BoxChecked), t.Done.Render(it.Text)
			}
			lines = append(lines,
				prefix+box+" "+text,
				"    "+t.Muted.Render(it.Description),
				"    "+t.Badge.Render("Recommended")+" "+t.Muted.Italic(true).Render(`"`+it.Recommendation+`"`),
			)
			idx++
		}
	}

	if avail <= 0 || len(lines) <= avail {
		return strings.Join(lines, "\n")
	}
	start := cursorLine - avail/2
	if start < 0 {
		start = 0
	}
	if start+avail > len(lines) {
		start = len(lines) - avail
	}
	return strings.Join(lines[start:start+avail], "\n")
}

func (m Model) footerView() string {
	t := m.theme
	out := m.help.View(m.keys)
	if m.status != "" {
		out = t.Pending.Render(m.status) + "\n" + out
	}
	return out
}

func (m Model) reportView() string {
	t := m.theme
	title := t.Title.Render(checklist.ReportTitle) + "  " + t.Muted.Render(m.snapshot.ID)
	body := m.viewer.View()
	foot := m.help.View(reportKeys{m.keys})
	if m.status != "" {
		foot = t.Pending.Render(m.status) + "\n" + foot
	}
	return ui.PanelString(t, []string{title, body, foot})
}
