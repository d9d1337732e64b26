// Package render provides text layout helpers shared by the page views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from content text
// and turns non-breaking spaces (common in scraped pages) into spaces.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || r == ' ' || (r != '\t' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == ' ':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens s to maxWidth cells, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s at exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row lays out left and right on one line of width cells, keeping at least
// one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator is a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Wrap word-wraps s to width cells. Styled input is supported.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(Sanitize(s), width, "")
}

// Bullets renders items as a wrapped list with hanging indentation.
func Bullets(items []string, marker string, width int) []string {
	indent := strings.Repeat(" ", lipgloss.Width(marker)+1)
	var lines []string
	for _, item := range items {
		wrapped := strings.Split(Wrap(item, width-len(indent)), "\n")
		for i, l := range wrapped {
			if i == 0 {
				lines = append(lines, marker+" "+l)
			} else {
				lines = append(lines, indent+l)
			}
		}
	}
	return lines
}

// Section renders a heading followed by a rule of the same width.
func Section(heading lipgloss.Style, rule lipgloss.Style, title string) []string {
	return []string{heading.Render(title), rule.Render(Separator(lipgloss.Width(title)))}
}
