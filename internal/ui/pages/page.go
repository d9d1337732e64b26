// Package pages renders the club site pages as scrollable terminal views.
package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clubview/internal/gallery"
	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/ui"
	"github.com/llehouerou/clubview/internal/ui/action"
	"github.com/llehouerou/clubview/internal/ui/cursor"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// Page is one routed screen below the header bar.
type Page interface {
	Path() string
	Title() string
	SetSize(width, height int)
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	// Enter is called when the page becomes current; Leave when it stops
	// being current.
	Enter() tea.Cmd
	Leave()
	HelpContexts() []string
}

// Link is a selectable line of a document. It either opens URL externally
// or navigates to Path.
type Link struct {
	Line  int
	Label string
	URL   string
	Path  string
}

// Doc is a rendered page body.
type Doc struct {
	Lines []string
	Links []Link
}

// Builder renders a page body for a width with link selected highlighted.
type Builder func(width, selected int) Doc

var pageKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextPage))

// textPage is a document in a viewport. j/k move between links when the
// page has any and scroll otherwise; paging keys always scroll.
type textPage struct {
	ui.Base
	path, title string
	build       Builder
	lock        *gallery.ScrollLock

	vp    viewport.Model
	doc   Doc
	links cursor.Cursor
}

func newTextPage(path, title string, lock *gallery.ScrollLock, build Builder) *textPage {
	return &textPage{
		path:  path,
		title: title,
		build: build,
		lock:  lock,
		vp:    viewport.New(0, 0),
		links: cursor.New(0),
	}
}

func (p *textPage) Path() string  { return p.path }
func (p *textPage) Title() string { return p.title }

func (p *textPage) HelpContexts() []string {
	return []string{keymap.ContextGlobal, keymap.ContextPage}
}

func (p *textPage) Enter() tea.Cmd { return nil }
func (p *textPage) Leave()         {}

func (p *textPage) SetSize(width, height int) {
	p.Base.SetSize(width, height)
	p.vp.Width = width
	p.vp.Height = height
	p.rebuild()
}

// Selected returns the selected link, if the page has links.
func (p *textPage) Selected() (Link, bool) {
	if len(p.doc.Links) == 0 {
		return Link{}, false
	}
	return p.doc.Links[p.links.Pos()], true
}

func (p *textPage) rebuild() {
	if p.Width() == 0 {
		return
	}
	width := p.ContentWidth()
	p.doc = p.build(width, p.links.Pos())
	p.links.ClampToBounds(len(p.doc.Links))

	pad := strings.Repeat(" ", max((p.Width()-width)/2, 0))
	lines := make([]string, len(p.doc.Lines))
	for i, l := range p.doc.Lines {
		lines[i] = pad + l
	}
	p.vp.SetContent(strings.Join(lines, "\n"))
}

func (p *textPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if p.lock.Locked() {
		return p, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p, p.handleKey(msg.String())
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			p.vp.ScrollDown(3)
		case tea.MouseButtonWheelUp:
			p.vp.ScrollUp(3)
		}
	}
	return p, nil
}

func (p *textPage) handleKey(key string) tea.Cmd {
	a := pageKeys.Resolve(key)
	n := len(p.doc.Links)

	switch a {
	case keymap.ActionOpenLink:
		link, ok := p.Selected()
		if !ok {
			return nil
		}
		if link.Path != "" {
			return action.Cmd(p.path, action.Navigate{Path: link.Path})
		}
		return action.Cmd(p.path, action.OpenURL{URL: link.URL, Label: link.Label})

	case keymap.ActionMoveDown, keymap.ActionMoveUp, keymap.ActionJumpStart, keymap.ActionJumpEnd:
		if n == 0 {
			p.scroll(a)
			return nil
		}
		p.links.HandleAction(a, n, n)
		p.rebuild()
		p.revealSelected(a)

	case keymap.ActionPageDown, keymap.ActionPageUp:
		p.scroll(a)
	}
	return nil
}

func (p *textPage) scroll(a keymap.Action) {
	switch a {
	case keymap.ActionMoveDown:
		p.vp.ScrollDown(1)
	case keymap.ActionMoveUp:
		p.vp.ScrollUp(1)
	case keymap.ActionPageDown:
		p.vp.ScrollDown(max(p.vp.Height-1, 1))
	case keymap.ActionPageUp:
		p.vp.ScrollUp(max(p.vp.Height-1, 1))
	case keymap.ActionJumpStart:
		p.vp.GotoTop()
	case keymap.ActionJumpEnd:
		p.vp.GotoBottom()
	}
}

// revealSelected scrolls the viewport so the selected link is visible. At
// the ends of the list the whole top or bottom of the page is shown.
func (p *textPage) revealSelected(a keymap.Action) {
	link, ok := p.Selected()
	if !ok {
		return
	}
	switch {
	case a == keymap.ActionJumpStart || p.links.Pos() == 0:
		p.vp.GotoTop()
		if link.Line >= p.vp.Height {
			p.vp.SetYOffset(link.Line - p.vp.Height/2)
		}
	case a == keymap.ActionJumpEnd:
		p.vp.GotoBottom()
	}
	if link.Line < p.vp.YOffset {
		p.vp.SetYOffset(link.Line)
	} else if link.Line >= p.vp.YOffset+p.vp.Height {
		p.vp.SetYOffset(link.Line - p.vp.Height + 1)
	}
}

func (p *textPage) View() string {
	return p.vp.View()
}

// linkLine renders a link label, highlighted when selected.
func linkLine(label string, selected bool) string {
	s := styles.T().S()
	if selected {
		return s.Cursor.Render("› " + label + " ")
	}
	return "  " + s.Link.Render(label)
}
