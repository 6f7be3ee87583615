package ui

// Icon is the closed set of category glyphs.
type Icon int

const (
	IconUnknown Icon = iota
	IconAlertTriangle
	IconShieldAlert
	IconActivity
	IconSettings
)

var iconNames = map[string]Icon{
	"AlertTriangle": IconAlertTriangle,
	"ShieldAlert":   IconShieldAlert,
	"Activity":      IconActivity,
	"Settings":      IconSettings,
}

var iconGlyphs = map[Icon]string{
	IconAlertTriangle: "⚠",
	IconShieldAlert:   "⛨",
	IconActivity:      "∿",
	IconSettings:      "⚙",
}

// ParseIcon maps a catalog icon name to an Icon; unrecognised names give IconUnknown.
func ParseIcon(name string) Icon {
	return iconNames[name]
}

// Glyph is the terminal rendering. IconUnknown draws as Settings.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconSettings]
}

func (i Icon) String() string {
	for name, v := range iconNames {
		if v == i {
			return name
		}
	}
	return "Unknown"
}
