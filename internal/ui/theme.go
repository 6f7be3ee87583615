package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders for one appearance.
type Theme struct {
	Name string
	Dark bool

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help, Card, Badge             lipgloss.Style

	BoxUnchecked, BoxChecked string
	BarFilled, BarEmpty      string
}

const (
	DarkTheme  = "dark"
	LightTheme = "light"
)

// brand accent, same hue on both backgrounds
const brandBlue = lipgloss.Color("#0078D4")

func dark() Theme {
	border := lipgloss.Color("238")
	return Theme{
		Name:     DarkTheme,
		Dark:     true,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent:   lipgloss.NewStyle().Foreground(brandBlue).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(brandBlue),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Background(lipgloss.Color("17")).Padding(0, 1),
		BoxUnchecked: "○",
		BoxChecked:   "●",
		BarFilled:    "█",
		BarEmpty:     "░",
	}
}

func light() Theme {
	border := lipgloss.Color("250")
	return Theme{
		Name:     LightTheme,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Accent:   lipgloss.NewStyle().Foreground(brandBlue).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(brandBlue),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Background(lipgloss.Color("195")).Padding(0, 1),
		BoxUnchecked: "○",
		BoxChecked:   "●",
		BarFilled:    "█",
		BarEmpty:     "░",
	}
}

// ThemeFor resolves a theme name; anything unknown falls back to dark,
// which is the startup appearance.
func ThemeFor(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LightTheme:
		return light()
	default:
		return dark()
	}
}

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t.Dark {
		return light()
	}
	return dark()
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DarkTheme, LightTheme:
		return true
	}
	return false
}
