package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles applied to each part of a terminal table.
type Theme struct {
	Name   string
	Header lipgloss.Style
	Border lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Time   lipgloss.Style // elapsed-time column, the sort key
	Total  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Header: newStyle().Bold(true),
		Border: newStyle().Foreground(lipgloss.Color("242")), // gray
		Label:  newStyle().Foreground(lipgloss.Color("39")),  // blue
		Value:  newStyle(),
		Time:   newStyle().Foreground(lipgloss.Color("214")), // orange
		Total:  newStyle().Bold(true).Foreground(lipgloss.Color("34")),
		Muted:  newStyle().Foreground(lipgloss.Color("242")),
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:   "orca",
		Header: newStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		Border: newStyle().Foreground(lipgloss.Color("245")),
		Label:  newStyle(),
		Value:  newStyle().Foreground(lipgloss.Color("245")),
		Time:   newStyle().Foreground(lipgloss.Color("179")), // muted gold
		Total:  newStyle().Bold(true).Foreground(lipgloss.Color("108")),
		Muted:  newStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonoTheme returns a monochrome theme (no colors, no attributes).
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Header: newStyle(),
		Border: newStyle(),
		Label:  newStyle(),
		Value:  newStyle(),
		Time:   newStyle(),
		Total:  newStyle(),
		Muted:  newStyle(),
	}
}

// newStyle returns a style that leaves tabs alone, so styled cells keep
// the widths Text computed for them.
func newStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// ThemeNames lists the themes ThemeByName knows.
var ThemeNames = []string{"default", "orca", "mono"}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
