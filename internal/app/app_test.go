package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/clubview/internal/content"
	"github.com/llehouerou/clubview/internal/imageref"
	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui/imageview"
	"github.com/llehouerou/clubview/internal/ui/pages"
	"github.com/llehouerou/clubview/internal/ui/testutil"
)

const baseURL = "https://club.test"

type opener struct {
	urls []string
	err  error
}

func (o *opener) open(url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

func newTestModel(t *testing.T, start string, open *opener) Model {
	t.Helper()
	c, err := content.Load("../../content/site-content.json")
	require.NoError(t, err)

	m := New(Options{
		Site: pages.Site{
			Content: c,
			BaseURL: baseURL,
			Now:     func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) },
		},
		PreviewCount: 8,
		Resolver:     imageref.New("https://img.test", nil),
		Start:        start,
		OpenURL:      open.open,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	_ = m.current.Enter()
	return m
}

// send delivers msg and runs the resulting commands, feeding their
// messages back until none are left. Commands that do not finish quickly
// (timers) are dropped.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next, cmd := m.Update(queue[0])
		queue = queue[1:]
		m = next.(Model)
		queue = append(queue, runQuick(cmd)...)
	}
	return m
}

func runQuick(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil, tea.QuitMsg:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, runQuick(c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

func keys(t *testing.T, m Model, ks ...string) Model {
	t.Helper()
	for _, k := range ks {
		m = send(t, m, testutil.Key(k))
	}
	return m
}

func plain(m Model) string {
	return testutil.StripANSI(m.View())
}

func TestApp_StartsAtHome(t *testing.T) {
	m := newTestModel(t, "", &opener{})
	require.Equal(t, route.Home, m.Path())

	view := plain(m)
	assert.Contains(t, view, "F1 Home")
	assert.Contains(t, view, "F7 In Memoriam")
	assert.Contains(t, view, "Corvettes of Durham")
	assert.Equal(t, 40, testutil.RowCount(view), "frame fills the terminal")
}

func TestApp_PageKeys(t *testing.T) {
	m := newTestModel(t, "", &opener{})

	tests := []struct {
		key  string
		want string
	}{
		{"3", route.Newsletters},
		{"f5", route.Sponsors},
		{"]", route.CodeOfEthics},
		{"]", route.InMemoriam},
		{"]", route.Home},
		{"[", route.InMemoriam},
		{"2", route.Executive},
	}
	for _, tt := range tests {
		m = keys(t, m, tt.key)
		require.Equal(t, tt.want, m.Path(), "after %q", tt.key)
	}
	assert.Contains(t, plain(m), "Executive Team")
}

func TestApp_UnknownStartShowsNotFound(t *testing.T) {
	m := newTestModel(t, "/members-only", &opener{})
	require.Equal(t, "Not Found", m.Current().Title())
	assert.Contains(t, plain(m), "Page Not Found")

	m = keys(t, m, "enter")
	assert.Equal(t, route.Home, m.Path())
}

func TestApp_OpenNewsletter(t *testing.T) {
	o := &opener{}
	m := newTestModel(t, route.Newsletters, o)

	m = keys(t, m, "enter")
	require.Equal(t, []string{baseURL + "/content/pdfs/newsletters/2025-02-newsletter.pdf"}, o.urls)
	assert.Equal(t, "Opened February 2025", m.Status())
	assert.Contains(t, plain(m), "Opened February 2025")
}

func TestApp_OpenLinkFailureShowsNotice(t *testing.T) {
	o := &opener{err: errors.New("no browser")}
	m := newTestModel(t, route.Newsletters, o)

	m = keys(t, m, "enter")
	n, ok := m.Notice()
	require.True(t, ok)
	assert.True(t, n.Error)
	assert.Equal(t, "Failed to open link 'February 2025': no browser", n.Body)
	assert.Contains(t, plain(m), "no browser")

	// Any key dismisses the notice without acting on the page.
	m = keys(t, m, "5")
	_, ok = m.Notice()
	assert.False(t, ok)
	assert.Equal(t, route.Newsletters, m.Path())
}

func TestApp_MembershipForm(t *testing.T) {
	o := &opener{}
	m := newTestModel(t, route.Sponsors, o)
	keys(t, m, "m")
	require.Equal(t, []string{baseURL + "/content/pdfs/2026-membership-form.pdf"}, o.urls)
}

func TestApp_Help(t *testing.T) {
	m := newTestModel(t, route.Newsletters, &opener{})

	m = keys(t, m, "?")
	require.True(t, m.HelpVisible())
	view := plain(m)
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "Pages")

	// Page keys do not reach the page while help is open.
	m = keys(t, m, "3", "esc")
	assert.False(t, m.HelpVisible())
	assert.Equal(t, route.Newsletters, m.Path())
}

func TestApp_GalleryLightbox(t *testing.T) {
	m := newTestModel(t, "", &opener{})
	m = keys(t, m, "4", "enter")

	require.True(t, m.ScrollLocked())
	view := plain(m)
	assert.Contains(t, view, "1 / 15")
	assert.NotContains(t, view, "F1 Home", "viewer covers the header")

	// Page keys go to the viewer while it is open.
	m = keys(t, m, "right", "right", "3")
	assert.Contains(t, plain(m), "3 / 15")
	assert.Equal(t, route.Gallery, m.Path())

	m = keys(t, m, "left", "G")
	assert.Contains(t, plain(m), "15 / 15")

	// q closes the viewer first, then quits.
	m = keys(t, m, "q")
	assert.False(t, m.ScrollLocked())
	assert.Contains(t, plain(m), "F4 Gallery")

	next, cmd := m.Update(testutil.Key("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.True(t, next.(Model).quitting)
}

func TestApp_ClickTileOpensLightbox(t *testing.T) {
	m := newTestModel(t, route.Gallery, &opener{})

	// Header, gallery tabs and a blank line, grid heading and a blank line.
	m = send(t, m, tea.MouseMsg{X: 2, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.ScrollLocked())
	assert.Contains(t, plain(m), "1 / 15")
}

func TestApp_LeavingGalleryReleasesLock(t *testing.T) {
	m := newTestModel(t, route.Gallery, &opener{})
	m = keys(t, m, "enter")
	require.True(t, m.ScrollLocked())

	// ctrl+c always quits, even with the viewer open.
	next, cmd := m.Update(testutil.Key("ctrl+c"))
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
	assert.False(t, next.(Model).ScrollLocked())
}

func TestApp_LeavingGalleryHidesPhotos(t *testing.T) {
	c, err := content.Load("../../content/site-content.json")
	require.NoError(t, err)
	m := New(Options{
		Site:     pages.Site{Content: c, BaseURL: baseURL, Now: time.Now},
		Resolver: imageref.New("https://img.test", nil),
		Renderer: imageview.NewRenderer(imageview.KittyProtocol{}),
		Start:    route.Gallery,
		OpenURL:  (&opener{}).open,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	_ = m.current.Enter()

	m = keys(t, m, "enter", "esc")
	require.False(t, m.ScrollLocked())

	m = keys(t, m, "1")
	require.Equal(t, route.Home, m.Path())
	assert.Contains(t, m.View(), "a=d", "leaving the gallery deletes drawn placements")
	assert.Empty(t, m.Pages().Gallery().Views())
}

func TestApp_StatusHints(t *testing.T) {
	m := newTestModel(t, route.Gallery, &opener{})
	lines := strings.Split(plain(m), "\n")
	status := lines[len(lines)-1]
	assert.Contains(t, status, "view photo")
	assert.Contains(t, status, "Gallery")
}

func TestEnforceHeight(t *testing.T) {
	assert.Equal(t, "a\nb", enforceHeight("a\nb\nc", 2))
	assert.Equal(t, "a\n\n", enforceHeight("a", 3))
}
