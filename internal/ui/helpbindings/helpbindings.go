// Package helpbindings shows the key bindings of the current screen in a
// scrollable popup.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/ui"
	"github.com/llehouerou/clubview/internal/ui/popup"
	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextPage,
	keymap.ContextGallery,
	keymap.ContextLightbox,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:   "Global",
	keymap.ContextPage:     "Pages",
	keymap.ContextGallery:  "Photo Gallery",
	keymap.ContextLightbox: "Photo Viewer",
}

// chrome is the popup height taken by title, footer, border and padding.
const chrome = 10

// Model is the help popup.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	offset   int
}

// New creates an empty help popup; call SetContexts to fill it.
func New() *Model {
	return &Model{}
}

// SetContexts selects which binding groups to list, in fixed order.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.offset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.offset = min(m.offset+1, m.maxScroll())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := m.lines()
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	end := min(m.offset+m.visibleHeight(), len(lines))
	visible := lines[min(m.offset, end):end]
	for i, l := range visible {
		visible[i] = render.Pad(l, width)
	}

	footer := "?/esc close"
	if len(lines) > m.visibleHeight() {
		footer = "j/k scroll · ?/esc close"
	}

	return s.Title.Render("Keys") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m *Model) lines() []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var out []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				out = append(out, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			out = append(out, s.Heading.Render(label), s.Subtle.Render(render.Separator(keyWidth+16)))
			context = b.Context
		}
		keys := strings.Join(b.Keys, ", ")
		out = append(out, s.KeyHint.Render(render.Pad(keys, keyWidth))+"  "+s.Base.Render(b.Description))
	}
	return out
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
