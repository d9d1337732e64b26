package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// Notice is a small centered box with a title, a body and a footer hint.
// It is used for status messages such as a failed link.
type Notice struct {
	Title  string
	Body   string
	Footer string
	Error  bool
}

// Render returns the notice centered in a screenW x screenH area.
func (n Notice) Render(screenW, screenH int) string {
	t := styles.T()
	s := t.S()

	inner := maxLineWidth(n.Body)
	inner = max(inner, lipgloss.Width(n.Title), lipgloss.Width(n.Footer))
	inner = min(inner+2, max(screenW-6, 1))

	lines := make([]string, 0, strings.Count(n.Body, "\n")+5)
	if n.Title != "" {
		title := s.Title
		if n.Error {
			title = s.Error.Bold(true)
		}
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, title.Render(n.Title)), "")
	}
	for line := range strings.SplitSeq(n.Body, "\n") {
		lines = append(lines, render.TruncateAndPad(line, inner))
	}
	if n.Footer != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.Subtle.Render(n.Footer)))
	}

	border := t.Border
	if n.Error {
		border = t.Error
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	return Center(box, screenW, screenH)
}

// SizeConfig defines how a bordered popup is sized.
type SizeConfig struct {
	WidthPct  int // percentage of screen width (0 = fit content)
	HeightPct int // percentage of screen height (0 = fit content)
	MaxWidth  int // columns (0 = no limit)
}

// Common size configurations.
var (
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 70}
	SizeAuto  = SizeConfig{}
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	w, h := dimensions(content, screenW, screenH, size)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(max(w-2, 1)).
		Height(max(h-2, 1)).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (int, int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	w := maxLineWidth(content) + 6
	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth)
	}
	h := strings.Count(content, "\n") + 1 + 4
	return min(w, screenW-4), min(h, screenH-4)
}

// Center places pre-rendered content in the middle of the screen. Lines
// above the box are full-width blanks so Compose leaves them alone.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	top := max((screenH-len(lines))/2, 0)
	left := max((screenW-maxLineWidth(content))/2, 0)

	var sb strings.Builder
	for range top {
		sb.WriteString(strings.Repeat(" ", screenW))
		sb.WriteByte('\n')
	}
	pad := strings.Repeat(" ", left)
	for _, line := range lines {
		sb.WriteString(pad)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compose draws layer over base. On each line only the span between the
// first and last visible non-space cell of layer replaces base; the rest
// of the base line stays visible. Both inputs may contain ANSI styling.
func Compose(base, layer string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(layer, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		out := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix += strings.Repeat(" ", width-end-w)
			}
			out += suffix
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}
