package styles

import "github.com/charmbracelet/lipgloss"

// TileStyle returns the bordered style for a gallery tile or card.
func TileStyle(selected bool) lipgloss.Style {
	t := T()
	border := t.Border
	if selected {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// ThumbStyle returns the style of a lightbox thumbnail. The active
// thumbnail uses a thick accent border so it reads without color too.
func ThumbStyle(active bool) lipgloss.Style {
	t := T()
	if active {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.BorderFocus).
			Foreground(t.FgBase).
			Bold(true)
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.FgSubtle).
		Foreground(t.FgMuted)
}
