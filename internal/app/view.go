package app

import (
	"strings"

	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/ui"
	"github.com/llehouerou/clubview/internal/ui/headerbar"
	"github.com/llehouerou/clubview/internal/ui/pages"
	"github.com/llehouerou/clubview/internal/ui/popup"
	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.quitting {
		// Frees every uploaded photo on the way out.
		return m.renderer.Clear()
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	g := m.pages.Gallery()
	full, fullScreen := "", false
	if m.current == pages.Page(g) {
		full, fullScreen = g.FullScreen()
	}

	var view string
	if fullScreen {
		view = enforceHeight(full, m.height)
	} else {
		header := headerbar.Render(m.path, m.width)
		body := enforceHeight(m.current.View(), max(m.height-ui.ChromeHeight, 1))
		view = header + "\n" + body + "\n" + m.renderStatus()
	}

	if m.showHelp {
		view = popup.Compose(view, popup.RenderBordered(m.help.View(), m.width, m.height, popup.SizeLarge), m.width)
	}
	if m.notice != nil {
		view = popup.Compose(view, m.notice.Render(m.width, m.height), m.width)
	}

	// Photo commands go around the frame: uploads before it, the
	// placement after it so the photo is drawn over the placeholder.
	view = m.graphics + g.Graphics() + view
	if fullScreen && !m.showHelp && m.notice == nil {
		view += g.Placement()
	}
	return view
}

func (m Model) renderStatus() string {
	s := styles.T().S()

	left := s.Muted.Render(m.current.Title())
	if m.status != "" {
		left = s.Success.Render(m.status)
	}
	if m.site.Lock.Locked() {
		left += s.Subtle.Render("  (scroll locked)")
	}

	hints := []string{"?", "help", "m", "membership", "q", "quit"}
	if _, ok := m.current.(*pages.GalleryPage); ok {
		hints = append([]string{"enter", "view photo"}, hints...)
	}
	var sb strings.Builder
	for i := 0; i < len(hints); i += 2 {
		if i > 0 {
			sb.WriteString(s.Subtle.Render(" · "))
		}
		sb.WriteString(s.KeyHint.Render(hints[i]) + " " + s.HintText.Render(hints[i+1]))
	}
	right := sb.String()

	return render.Row(" "+left, right+" ", m.width)
}

func newErrorNotice(body string) *popup.Notice {
	return &popup.Notice{
		Title:  "Error",
		Body:   body,
		Footer: "press any key",
		Error:  true,
	}
}

// helpContexts is what the help popup lists on the current page.
func (m Model) helpContexts() []string {
	contexts := m.current.HelpContexts()
	if len(contexts) == 0 {
		return []string{keymap.ContextGlobal}
	}
	return contexts
}

// enforceHeight pads or truncates view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
