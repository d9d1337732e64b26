package galleryview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clubview/internal/icons"
	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

const (
	tileHeight  = 5 // border plus three content lines
	tileGap     = 1
	gridChrome  = 4 // heading, blank, blank, toggle line
	narrowWidth = 60
	wideWidth   = 100
)

// columns picks the tile count per row for the current width.
func (m *Model) columns() int {
	switch w := m.Width(); {
	case w >= wideWidth:
		return 4
	case w >= narrowWidth:
		return 3
	default:
		return 2
	}
}

func (m *Model) visibleRows() int {
	return max((m.Height()-gridChrome)/tileHeight, 1)
}

func (m *Model) tileWidth() int {
	cols := m.columns()
	return max((m.Width()-(cols-1)*tileGap)/cols, 8)
}

// SetSize sets the grid area and keeps the selected tile in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.selectTile(m.sel)
}

// View renders the grid, or the photo viewer when it is open.
func (m *Model) View() string {
	if m.LightboxOpen() {
		return m.LightboxView()
	}
	return m.GridView()
}

// GridView renders the heading, the visible tile rows and the
// "View All" control.
func (m *Model) GridView() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	grid := m.g.Grid()

	count := "1 photo"
	if grid.Len() != 1 {
		count = fmt.Sprintf("%d photos", grid.Len())
	}
	lines := []string{s.Heading.Render(render.Truncate(m.Title(), m.Width()-14)) + s.Muted.Render(" · "+count)}

	displayed := grid.DisplayedCount()
	if displayed == 0 {
		lines = append(lines, "", s.Muted.Render("No photos yet."))
		return strings.Join(lines, "\n")
	}

	cols := m.columns()
	rowCount := ceilDiv(displayed, cols)
	start, end := m.rows.VisibleRange(rowCount, m.visibleRows())

	lines = append(lines, "")
	for r := start; r < end; r++ {
		tiles := make([]string, 0, cols*2)
		for c := range cols {
			pos := r*cols + c
			if pos >= displayed {
				break
			}
			if c > 0 {
				tiles = append(tiles, strings.Repeat(" ", tileGap))
			}
			tiles = append(tiles, m.tile(pos))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	var footer []string
	if grid.HasMore() {
		footer = append(footer, s.KeyHint.Render("[a]")+" "+s.Link.Render(grid.ToggleLabel()))
	}
	if end < rowCount || start > 0 {
		footer = append(footer, s.Subtle.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, rowCount)))
	}
	if len(footer) > 0 {
		lines = append(lines, "", strings.Join(footer, "   "))
	}
	return strings.Join(lines, "\n")
}

// gridTop is the row of the first tile row: heading, then a blank line.
const gridTop = 2

// gridHit maps a click at x, y (relative to the grid view) to a displayed
// tile position, or reports a click on the toggle control.
func (m *Model) gridHit(x, y int) (pos int, toggle, ok bool) {
	grid := m.g.Grid()
	displayed := grid.DisplayedCount()
	if displayed == 0 || x < 0 || y < gridTop {
		return 0, false, false
	}
	cols := m.columns()
	start, end := m.rows.VisibleRange(ceilDiv(displayed, cols), m.visibleRows())

	row := (y - gridTop) / tileHeight
	if row < end-start {
		w := m.tileWidth()
		c := x / (w + tileGap)
		if c >= cols || x-c*(w+tileGap) >= w {
			return 0, false, false
		}
		pos = (start+row)*cols + c
		if pos >= displayed {
			return 0, false, false
		}
		return pos, false, true
	}

	footer := gridTop + (end-start)*tileHeight + 1
	if y == footer && grid.HasMore() && x < lipgloss.Width(toggleText(grid.ToggleLabel())) {
		return 0, true, true
	}
	return 0, false, false
}

// handleGridMouse opens the clicked tile or toggles the grid; the wheel
// moves the selection by a row.
func (m *Model) handleGridMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.selectTile(m.sel + m.columns())
		return nil
	case tea.MouseButtonWheelUp:
		m.selectTile(m.sel - m.columns())
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	pos, toggle, ok := m.gridHit(msg.X, msg.Y)
	switch {
	case !ok:
		return nil
	case toggle:
		m.Toggle()
		return nil
	}
	m.selectTile(pos)
	return m.Activate(pos)
}

func toggleText(label string) string {
	return "[a] " + label
}

func (m *Model) tile(pos int) string {
	s := styles.T().S()
	w := m.tileWidth()
	inner := w - 2
	selected := m.IsFocused() && pos == m.sel

	idx, _ := m.g.Grid().IndexOf(pos)
	id, _ := m.g.Grid().At(idx)

	text := icons.FormatPhoto(fmt.Sprintf("Photo %d", idx+1))
	label := s.Muted.Render(text)
	if selected {
		label = s.Title.Render(text)
	}
	name := s.Subtle.Render(render.Truncate(baseName(id), inner))
	hint := ""
	if selected {
		hint = s.KeyHint.Render("enter") + s.HintText.Render(" view")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, label),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, name),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, hint),
	)
	return styles.TileStyle(selected).Width(inner).Render(body)
}

// baseName shortens an identifier like "a1b2/IMG_0042.jpg" to its last
// path element for tile labels.
func baseName(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 && i < len(id)-1 {
		return id[i+1:]
	}
	return id
}
