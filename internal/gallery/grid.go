package gallery

import "fmt"

// DefaultPreviewCount is the number of leading photos shown before
// "View All" is activated.
const DefaultPreviewCount = 8

// Grid is the preview state over an ordered image collection.
type Grid struct {
	images       []string
	previewCount int
	showAll      bool
}

// NewGrid creates a grid over images. The slice is copied so later
// changes by the caller do not affect the grid. A previewCount below 1
// is raised to 1.
func NewGrid(images []string, previewCount int) Grid {
	return Grid{
		images:       append([]string(nil), images...),
		previewCount: max(previewCount, 1),
	}
}

// Len returns the size of the full collection.
func (g Grid) Len() int {
	return len(g.images)
}

// Images returns the full collection. Callers must not modify it.
func (g Grid) Images() []string {
	return g.images
}

// At returns the identifier at index i of the full collection.
func (g Grid) At(i int) (string, bool) {
	if i < 0 || i >= len(g.images) {
		return "", false
	}
	return g.images[i], true
}

// PreviewCount returns the configured preview bound.
func (g Grid) PreviewCount() int {
	return g.previewCount
}

// ShowAll reports whether the full collection is displayed.
func (g Grid) ShowAll() bool {
	return g.showAll
}

// HasMore reports whether the collection exceeds the preview bound,
// in which case the grid offers an expand/collapse toggle.
func (g Grid) HasMore() bool {
	return len(g.images) > g.previewCount
}

// Displayed returns the identifiers currently shown in the grid.
func (g Grid) Displayed() []string {
	if g.showAll || !g.HasMore() {
		return g.images
	}
	return g.images[:g.previewCount]
}

// DisplayedCount returns len(Displayed()).
func (g Grid) DisplayedCount() int {
	return len(g.Displayed())
}

// Toggle flips between the preview subset and the full collection.
// It is a no-op when there is nothing more to show.
func (g *Grid) Toggle() {
	if !g.HasMore() {
		return
	}
	g.showAll = !g.showAll
}

// ToggleLabel returns the label of the expand/collapse control, or ""
// when the control is not shown.
func (g Grid) ToggleLabel() string {
	if !g.HasMore() {
		return ""
	}
	if g.showAll {
		return "Show Less"
	}
	return fmt.Sprintf("View All %d Photos", len(g.images))
}

// IndexOf maps a position in the displayed subset to an index in the full
// collection. The displayed subset is always a prefix of the collection,
// so the mapping is the identity over the displayed range.
func (g Grid) IndexOf(displayPos int) (int, bool) {
	if displayPos < 0 || displayPos >= g.DisplayedCount() {
		return 0, false
	}
	return displayPos, true
}
