package pages

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clubview/internal/imageref"
	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/logger"
	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui"
	"github.com/llehouerou/clubview/internal/ui/galleryview"
	"github.com/llehouerou/clubview/internal/ui/imageview"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// GalleryOptions wires the photo pipeline into the gallery page.
type GalleryOptions struct {
	Site         Site
	PreviewCount int // used when a gallery does not set its own
	Resolver     imageref.Resolver
	Fetcher      galleryview.Fetcher
	Renderer     *imageview.Renderer
	Bus          *keymap.Bus
	Logger       *logger.Logger
	Context      context.Context
}

var galleryKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextGallery))

// GalleryPage shows one grid per content gallery; tab cycles between them.
// Galleries are mounted on Enter and torn down on Leave, so each visit
// starts with fresh grid and viewer state.
type GalleryPage struct {
	ui.Base
	opts             GalleryOptions
	views            []*galleryview.Model
	active           int
	screenW, screenH int
}

var _ Page = (*GalleryPage)(nil)

// NewGallery creates the page; galleries mount on Enter.
func NewGallery(opts GalleryOptions) *GalleryPage {
	return &GalleryPage{opts: opts}
}

func (p *GalleryPage) Path() string  { return route.Gallery }
func (p *GalleryPage) Title() string { return "Gallery" }

// HelpContexts lists viewer keys while a photo is open.
func (p *GalleryPage) HelpContexts() []string {
	if p.LightboxOpen() {
		return []string{keymap.ContextLightbox}
	}
	return []string{keymap.ContextGlobal, keymap.ContextGallery}
}

// Enter mounts every gallery of the site content.
func (p *GalleryPage) Enter() tea.Cmd {
	p.Leave()
	for _, g := range p.opts.Site.Content.Galleries {
		preview := g.PreviewCount
		if preview <= 0 {
			preview = p.opts.PreviewCount
		}
		v := galleryview.New(galleryview.Options{
			Title:        g.Title,
			Images:       g.Images,
			PreviewCount: preview,
			Resolver:     p.opts.Resolver,
			Fetcher:      p.opts.Fetcher,
			Renderer:     p.opts.Renderer,
			Bus:          p.opts.Bus,
			Lock:         p.opts.Site.Lock,
			Logger:       p.opts.Logger,
			Context:      p.opts.Context,
		})
		p.views = append(p.views, v)
	}
	p.active = 0
	p.layout()
	return nil
}

// Leave unmounts every gallery, closing any open viewer.
func (p *GalleryPage) Leave() {
	for _, v := range p.views {
		v.Unmount()
	}
	p.views = nil
}

// Views returns the mounted galleries.
func (p *GalleryPage) Views() []*galleryview.Model {
	return p.views
}

// Active returns the gallery on screen, or nil when none is mounted.
func (p *GalleryPage) Active() *galleryview.Model {
	if p.active >= len(p.views) {
		return nil
	}
	return p.views[p.active]
}

// LightboxOpen reports whether the active gallery shows a photo.
func (p *GalleryPage) LightboxOpen() bool {
	v := p.Active()
	return v != nil && v.LightboxOpen()
}

func (p *GalleryPage) SetSize(width, height int) {
	p.Base.SetSize(width, height)
	p.layout()
}

// SetScreenSize passes the terminal size to the photo viewers.
func (p *GalleryPage) SetScreenSize(width, height int) {
	p.screenW, p.screenH = width, height
	p.layout()
}

// tabsHeight is the gallery tab line and the blank line under it.
const tabsHeight = 2

const tabSeparator = " │ "

func (p *GalleryPage) layout() {
	h := p.Height()
	if len(p.views) > 1 {
		h -= tabsHeight
	}
	for i, v := range p.views {
		v.SetSize(p.Width(), max(h, 1))
		v.SetScreenSize(p.screenW, p.screenH)
		v.SetFocused(i == p.active)
	}
}

// Update routes keys and mouse events to the active gallery and image
// messages to every gallery. Clicks on the tab line switch galleries.
func (p *GalleryPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.LightboxOpen() {
			return p, nil
		}
		if galleryKeys.Resolve(msg.String()) == keymap.ActionNextGallery && len(p.views) > 1 {
			p.active = (p.active + 1) % len(p.views)
			p.layout()
			return p, nil
		}
		if v := p.Active(); v != nil {
			_, cmd := v.Update(msg)
			return p, cmd
		}
		return p, nil

	case tea.MouseMsg:
		v := p.Active()
		if v == nil {
			return p, nil
		}
		if !v.LightboxOpen() && len(p.views) > 1 {
			if msg.Y == 0 {
				p.clickTab(msg)
				return p, nil
			}
			msg.Y -= tabsHeight
		}
		_, cmd := v.Update(msg)
		return p, cmd
	}

	var cmds []tea.Cmd
	for _, v := range p.views {
		_, cmd := v.Update(msg)
		cmds = append(cmds, cmd)
	}
	return p, tea.Batch(cmds...)
}

// clickTab switches to the gallery whose title was clicked.
func (p *GalleryPage) clickTab(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	x := 0
	for i, v := range p.views {
		w := lipgloss.Width(v.Title())
		if msg.X >= x && msg.X < x+w {
			p.active = i
			p.layout()
			return
		}
		x += w + lipgloss.Width(tabSeparator)
	}
}

// Sync lets the active gallery react to viewer intents sent through the
// key bus.
func (p *GalleryPage) Sync() tea.Cmd {
	if v := p.Active(); v != nil {
		return v.Sync()
	}
	return nil
}

// FullScreen returns the photo viewer when it is open.
func (p *GalleryPage) FullScreen() (string, bool) {
	if !p.LightboxOpen() {
		return "", false
	}
	return p.Active().LightboxView(), true
}

// Graphics returns pending terminal image commands of all galleries.
func (p *GalleryPage) Graphics() string {
	var sb strings.Builder
	for _, v := range p.views {
		sb.WriteString(v.Graphics())
	}
	return sb.String()
}

// Placement returns the command drawing the open photo.
func (p *GalleryPage) Placement() string {
	if !p.LightboxOpen() {
		return ""
	}
	return p.Active().Placement()
}

func (p *GalleryPage) View() string {
	s := styles.T().S()
	if len(p.views) == 0 {
		return s.Muted.Render("No photos yet. More photos coming soon! Check back regularly for updates.")
	}

	var sb strings.Builder
	if len(p.views) > 1 {
		tabs := make([]string, len(p.views))
		for i, v := range p.views {
			if i == p.active {
				tabs[i] = s.Heading.Render(v.Title())
			} else {
				tabs[i] = s.Muted.Render(v.Title())
			}
		}
		sb.WriteString(strings.Join(tabs, s.Subtle.Render(tabSeparator)))
		sb.WriteString(s.Subtle.Render("   tab next gallery"))
		sb.WriteString("\n\n")
	}
	sb.WriteString(p.Active().GridView())
	return sb.String()
}
