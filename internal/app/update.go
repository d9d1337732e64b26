package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clubview/internal/content"
	"github.com/llehouerou/clubview/internal/errmsg"
	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui"
	"github.com/llehouerou/clubview/internal/ui/action"
	"github.com/llehouerou/clubview/internal/ui/helpbindings"
	"github.com/llehouerou/clubview/internal/ui/pages"
)

var globalKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal))

var pageActions = map[keymap.Action]string{
	keymap.ActionPageHome:       route.Home,
	keymap.ActionPageExecutive:  route.Executive,
	keymap.ActionPageNewsletter: route.Newsletters,
	keymap.ActionPageGallery:    route.Gallery,
	keymap.ActionPageSponsors:   route.Sponsors,
	keymap.ActionPageEthics:     route.CodeOfEthics,
	keymap.ActionPageMemoriam:   route.InMemoriam,
}

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp || m.notice != nil {
			return m, nil
		}
		// Page rows start below the header unless the viewer covers the
		// whole screen.
		if g, ok := m.current.(*pages.GalleryPage); !ok || !g.LightboxOpen() {
			msg.Y -= 1
		}
		return m.updatePage(msg)

	case action.Msg:
		return m.handleAction(msg)

	case LinkOpenedMsg:
		if msg.Err != nil {
			m.log.With("url", msg.URL).Error(msg.Err, "open link")
			m.notice = newErrorNotice(errmsg.FormatWith(errmsg.OpLinkOpen, msg.Label, msg.Err))
			return m, nil
		}
		return m, m.setStatus("Opened " + msg.Label)

	case statusClearMsg:
		if m.status == msg.status {
			m.status = ""
		}
		return m, nil

	case graphicsFlushedMsg:
		if msg.seq == m.seq {
			m.graphics = ""
		}
		return m, nil
	}

	return m.updatePage(msg)
}

func (m *Model) layout() {
	pageH := max(m.height-ui.ChromeHeight, 1)
	m.current.SetSize(m.width, pageH)
	m.pages.Gallery().SetScreenSize(m.width, m.height)
	m.help.SetSize(m.width, m.height)
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := m.current.Update(msg)
	m.current = page
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		_, cmd := m.help.Update(msg)
		return m, cmd
	}
	if m.notice != nil {
		m.notice = nil
		return m, nil
	}

	// The photo viewer owns the keyboard while it is open.
	if m.bus.Active() {
		m.bus.Dispatch(key)
		return m, m.pages.Gallery().Sync()
	}

	switch a := globalKeys.Resolve(key); a {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.help.SetContexts(m.helpContexts())
		m.help.SetSize(m.width, m.height)
		m.showHelp = true
		return m, nil
	case keymap.ActionNextPage:
		return m.navigate(route.Step(m.path, 1).Path)
	case keymap.ActionPrevPage:
		return m.navigate(route.Step(m.path, -1).Path)
	case keymap.ActionMembershipForm:
		return m, m.openMembershipForm()
	default:
		if path, ok := pageActions[a]; ok {
			return m.navigate(path)
		}
	}
	return m.updatePage(msg)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case action.OpenURL:
		m.log.WithFields(map[string]any{"url": a.URL, "source": msg.Source}).Debug("open link")
		return m, openURLCmd(m.openURL, a)
	case action.Navigate:
		return m.navigate(a.Path)
	case helpbindings.Close:
		m.showHelp = false
	}
	return m, nil
}

// navigate leaves the current page and enters the page at path. Unknown
// paths show the not-found page.
func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	path = route.Normalize(path)
	if path == m.path {
		return m, nil
	}
	var hide tea.Cmd
	if _, ok := m.current.(*pages.GalleryPage); ok {
		hide = m.queueGraphics(m.renderer.Hide())
	}
	m.current.Leave()
	m.current = m.pages.Resolve(path)
	m.path = path
	m.layout()
	m.log.With("path", path).Debug("navigate")
	return m, tea.Batch(hide, m.current.Enter())
}

func (m Model) openMembershipForm() tea.Cmd {
	c := m.site.Content
	if c == nil || c.Membership.FormFile == "" {
		return nil
	}
	url := content.SiteURL(m.site.BaseURL, content.MembershipFormPath(c.Membership.FormFile))
	return openURLCmd(m.openURL, action.OpenURL{URL: url, Label: "Membership Form"})
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	return clearStatusCmd(s)
}

func (m *Model) queueGraphics(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	m.graphics += s
	m.seq++
	seq := m.seq
	return tea.Tick(graphicsFlushDelay, func(time.Time) tea.Msg {
		return graphicsFlushedMsg{seq: seq}
	})
}

// quit frees drawn photos before the program exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.pages.Gallery().Leave()
	m.quitting = true
	return m, tea.Quit
}
