package galleryview

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clubview/internal/ui/imageview"
	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

const (
	sideWidth   = 3 // previous/next affordance columns
	thumbWidth  = 6 // thumbnail box including border
	thumbGap    = 1
	stripHeight = 3
	closeLabel  = "esc ✕"
	// header, blank, caption and the strip surround the photo.
	lightboxChrome = 3 + stripHeight
)

type slot struct {
	index  int
	x0, x1 int // [x0, x1) columns
}

// lightboxLayout is the geometry shared by rendering, image placement and
// mouse hit testing. Coordinates are 0-based screen cells.
type lightboxLayout struct {
	width, height int
	imgRow        int
	imgCol        int
	imgW, imgH    int
	captionRow    int
	stripRow      int
	slots         []slot
}

func layoutLightbox(width, height, n, current int) lightboxLayout {
	lay := lightboxLayout{
		width:  width,
		height: height,
		imgRow: 2,
		imgCol: sideWidth,
		imgW:   width - 2*sideWidth,
		imgH:   height - lightboxChrome,
	}
	lay.captionRow = lay.imgRow + max(lay.imgH, 0)
	lay.stripRow = lay.captionRow + 1

	if n == 0 || width < thumbWidth {
		return lay
	}
	count := min(n, max((width-2)/(thumbWidth+thumbGap), 1))
	first := max(0, min(current-count/2, n-count))
	total := count*(thumbWidth+thumbGap) - thumbGap
	x := (width - total) / 2
	for i := first; i < first+count; i++ {
		lay.slots = append(lay.slots, slot{index: i, x0: x, x1: x + thumbWidth})
		x += thumbWidth + thumbGap
	}
	return lay
}

// thumbAt returns the photo under screen cell (x, y) in the strip.
func (l lightboxLayout) thumbAt(x, y int) (int, bool) {
	if y < l.stripRow || y >= l.stripRow+stripHeight {
		return 0, false
	}
	for _, s := range l.slots {
		if x >= s.x0 && x < s.x1 {
			return s.index, true
		}
	}
	return 0, false
}

func (m *Model) layout() lightboxLayout {
	box := m.g.Lightbox()
	return layoutLightbox(m.screenW, m.screenH, box.Len(), box.Current())
}

// handleLightboxMouse maps left clicks: thumbnails jump, the side columns
// step, the close label closes.
func (m *Model) handleLightboxMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	box := m.g.Lightbox()
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		box.Next()
		return
	case tea.MouseButtonWheelUp:
		box.Prev()
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	lay := m.layout()
	if i, ok := lay.thumbAt(msg.X, msg.Y); ok {
		box.JumpTo(i)
		return
	}
	switch {
	case msg.Y == 0 && msg.X >= lay.width-lipgloss.Width(closeLabel):
		box.Close()
	case msg.Y >= lay.imgRow && msg.Y < lay.captionRow && msg.X < sideWidth:
		box.Prev()
	case msg.Y >= lay.imgRow && msg.Y < lay.captionRow && msg.X >= lay.width-sideWidth:
		box.Next()
	}
}

// LightboxView renders the full-screen photo viewer.
func (m *Model) LightboxView() string {
	lay := m.layout()
	if lay.width <= 0 || lay.height <= 0 {
		return ""
	}
	s := styles.T().S()
	box := m.g.Lightbox()

	header := threePart(
		s.Title.Render(render.Truncate(m.Title(), max(lay.width/3, 4))),
		s.Accent.Render(box.Counter()),
		s.KeyHint.Render(closeLabel),
		lay.width,
	)
	if lay.imgH < 3 || lay.imgW < 8 {
		return lipgloss.Place(lay.width, lay.height, lipgloss.Left, lipgloss.Top,
			header+"\n"+s.Muted.Render("Window too small to show the photo"))
	}

	prev := lipgloss.Place(sideWidth, lay.imgH, lipgloss.Center, lipgloss.Center, s.KeyHint.Render("‹"))
	next := lipgloss.Place(sideWidth, lay.imgH, lipgloss.Center, lipgloss.Center, s.KeyHint.Render("›"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, prev, m.imageArea(lay), next)

	id, _ := m.g.Grid().At(box.Current())
	caption := lipgloss.PlaceHorizontal(lay.width, lipgloss.Center,
		s.Subtle.Render(render.Truncate(baseName(id), lay.width-2)))

	view := lipgloss.JoinVertical(lipgloss.Left, header, "", body, caption, m.strip(lay))
	return lipgloss.Place(lay.width, lay.height, lipgloss.Left, lipgloss.Top, view)
}

// imageArea fills the photo box: blank cells under a drawn photo, or a
// framed placeholder describing why there is none.
func (m *Model) imageArea(lay lightboxLayout) string {
	s := styles.T().S()
	box := m.g.Lightbox()
	url := m.currentURL()
	number := fmt.Sprintf("Photo %s", box.Counter())
	frame := lipgloss.NewStyle().BorderForeground(styles.T().Border)

	switch {
	case m.renderer.Ready(url, lay.imgW, lay.imgH):
		return imageview.Blank(lay.imgW, lay.imgH)
	case m.failed[url] != "":
		return imageview.Frame(frame.BorderForeground(styles.T().Error), lay.imgW, lay.imgH,
			s.Title.Render(number),
			s.Error.Render(m.failed[url]))
	case !m.renderer.Enabled() || m.fetcher == nil:
		return imageview.Frame(frame, lay.imgW, lay.imgH,
			s.Title.Render(number),
			"",
			s.Link.Render(render.Truncate(url, lay.imgW-4)),
			"",
			s.Subtle.Render("photos need a Kitty or Sixel terminal"))
	default:
		return imageview.Frame(frame, lay.imgW, lay.imgH,
			s.Title.Render(number),
			s.Muted.Render("Loading…"))
	}
}

func (m *Model) strip(lay lightboxLayout) string {
	if len(lay.slots) == 0 {
		return ""
	}
	current := m.g.Lightbox().Current()
	thumbs := make([]string, 0, 2*len(lay.slots))
	for i, sl := range lay.slots {
		if i > 0 {
			thumbs = append(thumbs, strings.Repeat(" ", thumbGap))
		}
		thumbs = append(thumbs, styles.ThumbStyle(sl.index == current).
			Width(thumbWidth-2).
			Align(lipgloss.Center).
			Render(strconv.Itoa(sl.index+1)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, thumbs...)
	return lipgloss.NewStyle().PaddingLeft(lay.slots[0].x0).Render(row)
}

// Placement returns the sequence that draws the shown photo over its
// blank box, or "" when there is nothing to draw. The viewer occupies the
// whole screen, so layout cells map to 1-based terminal rows and columns.
func (m *Model) Placement() string {
	url := m.currentURL()
	if url == "" {
		return ""
	}
	lay := m.layout()
	if lay.imgW < 8 || lay.imgH < 3 {
		return ""
	}
	return m.renderer.Place(url, lay.imgRow+1, lay.imgCol+1, lay.imgW, lay.imgH)
}

// threePart lays out left, center and right on one line of width cells,
// centering the middle part on the screen.
func threePart(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	cx := max((width-cw)/2, lw+1)
	line := left + strings.Repeat(" ", cx-lw) + center
	gap := width - lipgloss.Width(line) - rw
	if gap < 1 {
		return render.Row(line, right, width)
	}
	return line + strings.Repeat(" ", gap) + right
}
