package ui

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI drops SGR escape sequences, for plain-text output and width math.
func StripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// ProgressBar renders a bar for a 0..100 score followed by the rounded percentage.
func ProgressBar(t Theme, score float64, width int) string {
	if width < 5 {
		width = 5
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(score / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := t.Accent.Render(strings.Repeat(t.BarFilled, filled)) +
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled))
	return fmt.Sprintf("%s %3d%%", bar, int(math.Round(score)))
}

// PanelString frames lines in a rounded box.
func PanelString(t Theme, lines []string) string {
	return t.Card.Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box to w.
func Panel(w io.Writer, t Theme, lines []string) {
	fmt.Fprintln(w, PanelString(t, lines))
}

// Row joins blocks side by side, top aligned.
func Row(blocks ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
