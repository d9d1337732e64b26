// Package app is the root bubbletea model: header tabs, the current page,
// the status line and popups.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/llehouerou/clubview/internal/gallery"
	"github.com/llehouerou/clubview/internal/imageref"
	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/logger"
	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui/galleryview"
	"github.com/llehouerou/clubview/internal/ui/helpbindings"
	"github.com/llehouerou/clubview/internal/ui/imageview"
	"github.com/llehouerou/clubview/internal/ui/pages"
	"github.com/llehouerou/clubview/internal/ui/popup"
)

// Options configures the application model.
type Options struct {
	Site         pages.Site
	SiteName     string
	PreviewCount int
	Resolver     imageref.Resolver
	Fetcher      galleryview.Fetcher
	Renderer     *imageview.Renderer
	Logger       *logger.Logger
	Context      context.Context

	// Start is the first page shown; empty means home.
	Start string

	// OpenURL opens a link outside the terminal. Defaults to the system
	// browser.
	OpenURL func(url string) error
}

// Model is the root application model.
type Model struct {
	site     pages.Site
	siteName string
	pages    *pages.Set
	current  pages.Page
	path     string

	bus      *keymap.Bus
	renderer *imageview.Renderer
	openURL  func(string) error
	log      *logger.Logger

	help     *helpbindings.Model
	showHelp bool
	notice   *popup.Notice
	status   string

	graphics string // pending terminal image commands of the app itself
	seq      int

	width, height int
	quitting      bool
}

// New builds the model and its pages. The site's scroll lock is created
// when missing.
func New(opts Options) Model {
	site := opts.Site
	if site.Lock == nil {
		site.Lock = gallery.NewScrollLock()
	}
	open := opts.OpenURL
	if open == nil {
		open = browser.OpenURL
	}
	name := opts.SiteName
	if name == "" && site.Content != nil {
		name = site.Content.Club.Name
	}

	bus := keymap.NewBus()
	galleryPage := pages.NewGallery(pages.GalleryOptions{
		Site:         site,
		PreviewCount: opts.PreviewCount,
		Resolver:     opts.Resolver,
		Fetcher:      opts.Fetcher,
		Renderer:     opts.Renderer,
		Bus:          bus,
		Logger:       opts.Logger,
		Context:      opts.Context,
	})

	set := pages.NewSet(site, galleryPage)
	start := opts.Start
	if start == "" {
		start = route.Home
	}
	path := route.Normalize(start)

	return Model{
		site:     site,
		siteName: name,
		pages:    set,
		current:  set.Resolve(path),
		path:     path,
		bus:      bus,
		renderer: opts.Renderer,
		openURL:  open,
		log:      opts.Logger,
		help:     helpbindings.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.siteName), m.current.Enter())
}

// Path returns the route of the current page.
func (m Model) Path() string {
	return m.path
}

// Current returns the page on screen.
func (m Model) Current() pages.Page {
	return m.current
}

// Pages returns the routed pages.
func (m Model) Pages() *pages.Set {
	return m.pages
}

// Status returns the status line message, if any.
func (m Model) Status() string {
	return m.status
}

// Notice returns the notice popup on screen, if any.
func (m Model) Notice() (popup.Notice, bool) {
	if m.notice == nil {
		return popup.Notice{}, false
	}
	return *m.notice, true
}

// HelpVisible reports whether the key help popup is open.
func (m Model) HelpVisible() bool {
	return m.showHelp
}

// ScrollLocked reports whether background scrolling is suspended.
func (m Model) ScrollLocked() bool {
	return m.site.Lock.Locked()
}
