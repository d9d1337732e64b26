package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Banner renders text in bold, shading each grapheme from the primary to
// the secondary brand color. Themes without hex colors get plain bold
// primary text.
func Banner(text string) string {
	t := T()
	bold := lipgloss.NewStyle().Bold(true)

	from, errFrom := colorful.Hex(string(t.Primary))
	to, errTo := colorful.Hex(string(t.Secondary))
	n := uniseg.GraphemeClusterCount(text)
	if errFrom != nil || errTo != nil || n < 2 {
		return bold.Foreground(t.Primary).Render(text)
	}

	var sb strings.Builder
	gr := uniseg.NewGraphemes(text)
	for i := 0; gr.Next(); i++ {
		c := from.BlendHcl(to, float64(i)/float64(n-1)).Clamped()
		sb.WriteString(bold.Foreground(lipgloss.Color(c.Hex())).Render(gr.Str()))
	}
	return sb.String()
}
