// Package headerbar renders the page tabs at the top of the screen.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Render returns the tab line for width columns with current highlighted.
// Tabs use full titles when they fit, short labels otherwise, and fall
// back to the current page alone on very narrow screens.
func Render(current string, width int) string {
	if width < 20 {
		return ""
	}
	current = route.Normalize(current)

	for _, short := range []bool{false, true} {
		if line := tabs(current, short); lipgloss.Width(line) <= width {
			return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		}
	}

	s := styles.T().S()
	if r, ok := route.Lookup(current); ok {
		return s.Heading.Render(r.Title)
	}
	return s.Muted.Render("Not found")
}

func tabs(current string, short bool) string {
	t := styles.T()
	s := t.S()
	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	sep := s.Subtle.Render(" │ ")

	parts := make([]string, 0, len(route.All))
	for i, r := range route.All {
		name := r.Title
		if short {
			name = r.Short
		}
		key := fmt.Sprintf("F%d", i+1)
		if r.Path == current {
			parts = append(parts, active.Render(key+" "+name))
		} else {
			parts = append(parts, s.Subtle.Render(key)+" "+s.Muted.Render(name))
		}
	}
	return strings.Join(parts, sep)
}
