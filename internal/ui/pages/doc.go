package pages

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clubview/internal/icons"
	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// docBuilder accumulates page lines and their links.
type docBuilder struct {
	width    int
	selected int
	doc      Doc
}

func newDoc(width, selected int) *docBuilder {
	return &docBuilder{width: max(width, 10), selected: selected}
}

func (b *docBuilder) line(s string) {
	b.doc.Lines = append(b.doc.Lines, s)
}

func (b *docBuilder) blank() {
	b.line("")
}

// text wraps plain text into the document with style.
func (b *docBuilder) text(style lipgloss.Style, s string) {
	for l := range strings.SplitSeq(render.Wrap(s, b.width), "\n") {
		b.line(style.Render(l))
	}
}

func (b *docBuilder) centered(s string) {
	b.line(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, s))
}

// header is the page title block.
func (b *docBuilder) header(title, subtitle string) {
	s := styles.T().S()
	b.centered(styles.Banner(title))
	if subtitle != "" {
		for l := range strings.SplitSeq(render.Wrap(subtitle, b.width), "\n") {
			b.centered(s.Muted.Render(l))
		}
	}
	b.blank()
}

func (b *docBuilder) section(title, subtitle string) {
	s := styles.T().S()
	b.doc.Lines = append(b.doc.Lines, render.Section(s.Heading, s.Subtle, title)...)
	if subtitle != "" {
		b.line(s.Muted.Render(subtitle))
	}
}

func (b *docBuilder) bullets(marker string, items []string) {
	s := styles.T().S()
	for _, l := range render.Bullets(items, marker, b.width) {
		b.line(s.Base.Render(l))
	}
}

// numbered lists items as "1." "2." with hanging indentation.
func (b *docBuilder) numbered(items []string) {
	s := styles.T().S()
	width := len(strconv.Itoa(len(items))) + 1
	for i, item := range items {
		marker := render.Pad(strconv.Itoa(i+1)+".", width)
		for j, l := range render.Bullets([]string{item}, marker, b.width) {
			if j == 0 {
				l = s.Accent.Render(marker) + l[len(marker):]
			}
			b.line(s.Base.Render(l))
		}
	}
}

// link adds a selectable line opening url or navigating to path.
func (b *docBuilder) link(label, url, path string) {
	idx := len(b.doc.Links)
	b.doc.Links = append(b.doc.Links, Link{Line: len(b.doc.Lines), Label: label, URL: url, Path: path})
	b.line(linkLine(render.Truncate(icons.FormatLink(label, url), b.width-3), idx == b.selected))
}

func (b *docBuilder) done() Doc {
	return b.doc
}
