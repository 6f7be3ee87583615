package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/entraops/internal/checklist"
)

// Markdown renders the printable document for r.
func Markdown(r checklist.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "**%d%%** Overall Security Score · %s · %d/%d checks passed\n\n",
		r.Rounded, r.Status, r.Completed, r.Total)
	fmt.Fprintf(&b, "_Generated %s · Report %s_\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.ID)

	b.WriteString("## Action Required\n\n")
	if r.AllPassed() {
		b.WriteString("✔ All checks passed!\n\n")
	} else {
		for _, it := range r.Incomplete {
			fmt.Fprintf(&b, "- ⚠ **%s** (%s)  \n  %s\n", it.Text, it.Category, it.Recommendation)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Passed Checks\n\n")
	if len(r.Complete) == 0 {
		b.WriteString("_None yet._\n")
	}
	for _, it := range r.Complete {
		fmt.Fprintf(&b, "- ✔ %s\n", it.Text)
	}
	return b.String()
}

// Render styles the Markdown for a terminal of the given width.
func Render(r checklist.Report, dark bool, width int) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := tr.Render(Markdown(r))
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}
