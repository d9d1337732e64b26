package imageview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Blank returns width x height spaces so lipgloss can lay out the area an
// image will be placed over.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Frame draws a bordered box of exactly width x height cells with the
// given lines centered inside. It stands in for photos that cannot be
// drawn or have not loaded yet.
func Frame(style lipgloss.Style, width, height int, lines ...string) string {
	if width < 4 || height < 3 {
		return Blank(width, height)
	}

	inner := lipgloss.Place(width-2, height-2, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))

	return style.
		Border(lipgloss.RoundedBorder()).
		Width(width - 2).
		Height(height - 2).
		MaxWidth(width).
		MaxHeight(height).
		Render(inner)
}
