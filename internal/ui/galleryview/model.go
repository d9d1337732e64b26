// Package galleryview renders a mounted gallery: the tile grid on the
// gallery page and the full-screen photo viewer with its thumbnail strip.
package galleryview

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clubview/internal/gallery"
	"github.com/llehouerou/clubview/internal/imageref"
	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/logger"
	"github.com/llehouerou/clubview/internal/ui"
	"github.com/llehouerou/clubview/internal/ui/cursor"
	"github.com/llehouerou/clubview/internal/ui/imageview"
)

// Options configures a gallery view. Only Title and Images are required.
type Options struct {
	Title        string
	Images       []string // opaque identifiers
	PreviewCount int
	Resolver     imageref.Resolver
	Fetcher      Fetcher             // nil shows placeholders only
	Renderer     *imageview.Renderer // nil or disabled shows placeholders
	Bus          *keymap.Bus
	Lock         *gallery.ScrollLock
	Logger       *logger.Logger
	Context      context.Context
}

var gridKeys = keymap.NewResolver(keymap.ForContexts(keymap.ContextPage, keymap.ContextGallery))

// Model is one gallery on screen.
type Model struct {
	ui.Base
	g        *gallery.Gallery
	urls     []string // resolved, parallel to the collection
	fetcher  Fetcher
	renderer *imageview.Renderer
	log      *logger.Logger
	ctx      context.Context

	sel  int // selected tile, as a display position
	rows cursor.Cursor

	screenW, screenH int // lightbox area, the whole terminal

	requested map[string]bool   // fetches in flight or done
	loaded    map[string]bool   // fetched successfully
	failed    map[string]string // url -> placeholder message
	preparing map[string]bool   // url@size -> prepare in flight
	wasOpen   bool
	shownIdx  int

	graphics string // sequence to write before the next frames
	seq      int64
}

// New mounts the gallery and returns its view.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	g := gallery.Mount(opts.Title, opts.Images, opts.PreviewCount, opts.Bus, opts.Lock)
	return &Model{
		g:         g,
		urls:      opts.Resolver.ResolveAll(g.Grid().Images()),
		fetcher:   opts.Fetcher,
		renderer:  opts.Renderer,
		log:       opts.Logger.With("gallery", opts.Title),
		ctx:       ctx,
		rows:      cursor.New(0),
		requested: make(map[string]bool),
		loaded:    make(map[string]bool),
		failed:    make(map[string]string),
		preparing: make(map[string]bool),
		shownIdx:  -1,
	}
}

// Title returns the gallery title.
func (m *Model) Title() string {
	return m.g.Title
}

// Gallery exposes the underlying state, mainly for tests and the app.
func (m *Model) Gallery() *gallery.Gallery {
	return m.g
}

// URL returns the resolved URL of photo i.
func (m *Model) URL(i int) string {
	if i < 0 || i >= len(m.urls) {
		return ""
	}
	return m.urls[i]
}

// Selected returns the selected tile as a display position.
func (m *Model) Selected() int {
	return m.sel
}

// LightboxOpen reports whether the photo viewer is showing.
func (m *Model) LightboxOpen() bool {
	return m.g.Lightbox().IsOpen()
}

// SetScreenSize sets the full terminal size used by the photo viewer.
func (m *Model) SetScreenSize(width, height int) {
	m.screenW, m.screenH = width, height
}

// Unmount tears the gallery down: the viewer closes and releases the scroll
// lock and its keys. Drawn photos stay on screen until the owner of the
// renderer hides or clears them.
func (m *Model) Unmount() {
	m.g.Unmount()
	m.wasOpen = false
	m.shownIdx = -1
}

// Graphics returns terminal image commands that must precede the frame.
func (m *Model) Graphics() string {
	return m.graphics
}

func (m *Model) queueGraphics(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	m.graphics += s
	m.seq = flushSeq.Add(1)
	return flushCmd(m.seq)
}

// Update handles grid keys, image messages and mouse clicks on the grid
// or the viewer.
// Keys for the open viewer arrive through the key bus, not here; call
// Sync after dispatching them.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.LightboxOpen() {
			return m, nil
		}
		return m, m.handleGridKey(msg.String())

	case tea.MouseMsg:
		if !m.LightboxOpen() {
			return m, m.handleGridMouse(msg)
		}
		m.handleLightboxMouse(msg)
		return m, m.Sync()

	case ImageLoadedMsg:
		return m, m.handleLoaded(msg)

	case ImagePreparedMsg:
		return m, m.handlePrepared(msg)

	case graphicsFlushedMsg:
		if msg.seq == m.seq {
			m.graphics = ""
		}
	}
	return m, nil
}

func (m *Model) handleGridKey(key string) tea.Cmd {
	n := m.g.Grid().DisplayedCount()
	cols := m.columns()

	switch gridKeys.Resolve(key) {
	case keymap.ActionMoveLeft:
		m.selectTile(m.sel - 1)
	case keymap.ActionMoveRight:
		m.selectTile(m.sel + 1)
	case keymap.ActionMoveUp:
		m.selectTile(m.sel - cols)
	case keymap.ActionMoveDown:
		m.selectTile(m.sel + cols)
	case keymap.ActionJumpStart:
		m.selectTile(0)
	case keymap.ActionJumpEnd:
		m.selectTile(n - 1)
	case keymap.ActionSelect:
		return m.Activate(m.sel)
	case keymap.ActionToggleShowAll:
		m.Toggle()
	}
	return nil
}

func (m *Model) selectTile(pos int) {
	n := m.g.Grid().DisplayedCount()
	if n == 0 {
		return
	}
	m.sel = max(0, min(pos, n-1))
	cols := m.columns()
	m.rows.Jump(m.sel/cols, ceilDiv(n, cols), m.visibleRows())
}

// Toggle switches between the preview and the whole collection, keeping
// the selection on a displayed tile.
func (m *Model) Toggle() {
	m.g.Toggle()
	m.selectTile(m.sel)
	m.rows.ClampToBounds(ceilDiv(m.g.Grid().DisplayedCount(), m.columns()))
}

// Activate opens the viewer on the tile at display position pos.
func (m *Model) Activate(pos int) tea.Cmd {
	if !m.g.Activate(pos) {
		return nil
	}
	m.sel = pos
	return m.Sync()
}

// Sync reacts to lightbox transitions made outside Update, such as key
// intents dispatched through the bus. It starts loads for the shown photo
// and its neighbours and clears drawn photos when the viewer closes.
func (m *Model) Sync() tea.Cmd {
	box := m.g.Lightbox()
	if !box.IsOpen() {
		if m.wasOpen {
			m.wasOpen = false
			m.shownIdx = -1
			return m.queueGraphics(m.renderer.Hide())
		}
		return nil
	}

	var cmds []tea.Cmd
	if !m.wasOpen || box.Current() != m.shownIdx {
		if m.wasOpen {
			cmds = append(cmds, m.queueGraphics(m.renderer.Hide()))
		}
		m.wasOpen = true
		m.shownIdx = box.Current()
		m.log.With("photo", box.Counter()).Debug("showing photo")
	}

	n := box.Len()
	cur := box.Current()
	for _, i := range []int{cur, (cur + 1) % n, (cur - 1 + n) % n} {
		cmds = append(cmds, m.load(i))
	}
	cmds = append(cmds, m.prepareCurrent(nil))
	return tea.Batch(cmds...)
}

func (m *Model) load(i int) tea.Cmd {
	url := m.URL(i)
	if url == "" || m.fetcher == nil || m.requested[url] {
		return nil
	}
	m.requested[url] = true
	return fetchCmd(m.ctx, m.fetcher, url)
}

func (m *Model) handleLoaded(msg ImageLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.failed[msg.URL] = failureText(msg.Err)
		m.log.With("url", msg.URL).Error(msg.Err, "photo load failed")
		return nil
	}
	delete(m.failed, msg.URL)
	m.loaded[msg.URL] = true
	m.log.WithFields(map[string]any{"url": msg.URL, "source": msg.Source.String()}).Debug("photo loaded")
	if msg.URL != m.currentURL() {
		return nil
	}
	return m.prepareCurrent(msg.Data)
}

// prepareCurrent uploads the shown photo at the current viewer size.
// Without data it refetches a photo loaded earlier, which hits the
// fetcher's memory cache.
func (m *Model) prepareCurrent(data []byte) tea.Cmd {
	url := m.currentURL()
	if url == "" || !m.renderer.Enabled() || m.failed[url] != "" {
		return nil
	}
	lay := m.layout()
	if lay.imgW <= 0 || lay.imgH <= 0 || m.renderer.Ready(url, lay.imgW, lay.imgH) {
		return nil
	}
	key := url + "@" + strconv.Itoa(lay.imgW) + "x" + strconv.Itoa(lay.imgH)
	if m.preparing[key] {
		return nil
	}
	if data == nil {
		if !m.loaded[url] || m.fetcher == nil {
			return nil
		}
		m.preparing[key] = true
		fetcher, ctx := m.fetcher, m.ctx
		r, w, h := m.renderer, lay.imgW, lay.imgH
		return func() tea.Msg {
			img, err := fetcher.Fetch(ctx, url)
			if err != nil {
				return ImageLoadedMsg{URL: url, Err: err}
			}
			return prepareCmd(r, url, img.Data, w, h)()
		}
	}
	m.preparing[key] = true
	return prepareCmd(m.renderer, url, data, lay.imgW, lay.imgH)
}

func (m *Model) handlePrepared(msg ImagePreparedMsg) tea.Cmd {
	delete(m.preparing, msg.URL+"@"+strconv.Itoa(msg.Width)+"x"+strconv.Itoa(msg.Height))
	if msg.Err != nil {
		m.failed[msg.URL] = "Could not display photo"
		m.log.With("url", msg.URL).Error(msg.Err, "photo decode failed")
		return nil
	}
	return m.queueGraphics(msg.Transmit)
}

func (m *Model) currentURL() string {
	if !m.LightboxOpen() {
		return ""
	}
	return m.URL(m.g.Lightbox().Current())
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
