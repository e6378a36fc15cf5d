package ui

import "github.com/charmbracelet/lipgloss"

// Palette is a set of ANSI 256 colours for one theme.
type Palette struct {
	Name      string
	Accent    lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color
}

// OrangePalette is the default warm theme for dark terminals.
var OrangePalette = Palette{
	Name:      "orange",
	Accent:    lipgloss.Color("208"),
	Border:    lipgloss.Color("245"),
	Highlight: lipgloss.Color("82"),
}

// TableStyles are the lipgloss styles used to render a results table.
type TableStyles struct {
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Highlight lipgloss.Style
	Border    lipgloss.Style
}

// Styles builds table styles bound to r, so colour output follows the
// capabilities of r's writer.
func (p Palette) Styles(r *lipgloss.Renderer) TableStyles {
	cell := r.NewStyle().Padding(0, 1)
	return TableStyles{
		Header:    r.NewStyle().Bold(true).Foreground(p.Accent).Padding(0, 1),
		Cell:      cell,
		Highlight: cell.Foreground(p.Highlight),
		Border:    r.NewStyle().Foreground(p.Border),
	}
}
