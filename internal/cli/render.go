package cli

import (
	"fmt"

	"github.com/idilsaglam/entraops/internal/checklist"
	"github.com/idilsaglam/entraops/internal/model"
	"github.com/idilsaglam/entraops/internal/ui"
)

// listLines builds the `ls` panel: header, progress, then checks either by
// category or grouped pending/done. The header always reflects the whole
// catalog; the query only narrows what is listed.
func listLines(t ui.Theme, c model.Catalog, done *checklist.Tracker, query string, group bool) []string {
	st := checklist.ComputeStats(c, done)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Checks"),
		t.Success.Render("✔"), st.Completed,
		t.Pending.Render("•"), len(st.Incomplete),
		t.Accent.Render("Total"), st.Total,
	)

	lines := []string{header, ui.ProgressBar(t, st.Score, 28) + "  " + t.Muted.Render(st.Status()), ""}

	visible := checklist.FilterCatalog(c, query)
	switch {
	case len(visible) == 0:
		lines = append(lines, t.Muted.Render(fmt.Sprintf("no checks match %q", query)))
	case group:
		lines = append(lines, groupLines(t, visible, done)...)
	default:
		lines = append(lines, categoryLines(t, visible, done)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: run `entraops` for the interactive dashboard"))
	return lines
}

func itemLine(t ui.Theme, it model.Item, done *checklist.Tracker) string {
	title := it.Text
	if len(title) > 80 {
		title = title[:77] + "..."
	}
	box, text := t.Muted.Render(t.BoxUnchecked), title
	if done.IsComplete(it.ID) {
		box, text = t.Success.Render(t.BoxChecked), t.Done.Render(title)
	}
	return fmt.Sprintf("%s %s %s", box, text, t.Muted.Render("["+it.ID+"]"))
}

func categoryLines(t ui.Theme, c model.Catalog, done *checklist.Tracker) []string {
	var out []string
	for i, cat := range c {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, t.Accent.Render(ui.ParseIcon(cat.Icon).Glyph()+" "+cat.Title))
		for _, it := range cat.Items {
			out = append(out, "  "+itemLine(t, it, done))
		}
	}
	return out
}

func groupLines(t ui.Theme, c model.Catalog, done *checklist.Tracker) []string {
	var pend, fin []string
	for _, it := range c.Items() {
		if done.IsComplete(it.ID) {
			fin = append(fin, itemLine(t, it.Item, done))
		} else {
			pend = append(pend, itemLine(t, it.Item, done))
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Action Required"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, pend...)
	}
	lines = append(lines, "", t.Accent.Render("Passed"))
	if len(fin) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, fin...)
	}
	return lines
}
