package pages

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/clubview/internal/content"
	"github.com/llehouerou/clubview/internal/gallery"
	"github.com/llehouerou/clubview/internal/imageref"
	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui/action"
	"github.com/llehouerou/clubview/internal/ui/testutil"
)

const baseURL = "https://club.test"

func testSite(t *testing.T) Site {
	t.Helper()
	c, err := content.Load("../../../content/site-content.json")
	require.NoError(t, err)
	return Site{
		Content: c,
		BaseURL: baseURL,
		Lock:    gallery.NewScrollLock(),
		Now:     func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func sized(p Page, w, h int) *testutil.Harness[Page] {
	p.SetSize(w, h)
	p.Enter()
	return testutil.NewHarness(p)
}

func actionOf(t *testing.T, h *testutil.Harness[Page], key string) action.Action {
	t.Helper()
	msgs := testutil.Collect(h.SendKey(key))
	require.Len(t, msgs, 1)
	msg, ok := msgs[0].(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", msgs[0])
	return msg.Action
}

func TestHome(t *testing.T) {
	h := sized(NewHome(testSite(t)), 100, 200)
	view := testutil.NormalizeWhitespace(h.PlainView())

	for _, want := range []string{
		"Corvettes of Durham",
		"Proudly serving the community since 2000",
		"Monthly meetings on the Second Tuesday of the month at 7:30 PM",
		"Lakeridge Health Cancer Care",
		"$52,600+",
		"• Weekend cruises",
		"Download Membership Form",
		"© 2026 Corvettes of Durham",
	} {
		require.Contains(t, view, want)
	}

	// First link navigates to the executive page.
	require.Equal(t, action.Navigate{Path: route.Executive}, actionOf(t, h, "enter"))

	h.SendKey("j")
	require.Equal(t, action.OpenURL{URL: "mailto:info@corvettesofdurham.com", Label: "Contact Us"}, actionOf(t, h, "o"))

	h.SendKey("j")
	got := actionOf(t, h, "enter").(action.OpenURL)
	require.Equal(t, baseURL+"/content/pdfs/2026-membership-form.pdf", got.URL)
}

func TestNewsletters_NewestFirst(t *testing.T) {
	h := sized(NewNewsletters(testSite(t)), 80, 100)
	view := h.PlainView()

	order := []string{"February 2025", "January 2025", "December 2024", "November 2024", "March 2024"}
	last := -1
	for _, label := range order {
		i := strings.Index(view, label)
		require.Greater(t, i, last, "%s out of order", label)
		last = i
	}

	require.Equal(t,
		action.OpenURL{URL: baseURL + "/content/pdfs/newsletters/2025-02-newsletter.pdf", Label: "February 2025"},
		actionOf(t, h, "enter"))

	h.SendKeys("j", "j")
	got := actionOf(t, h, "enter").(action.OpenURL)
	require.Equal(t, "December 2024", got.Label)

	h.SendKey("G")
	got = actionOf(t, h, "enter").(action.OpenURL)
	require.Equal(t, "March 2024", got.Label)
}

func TestSponsors_Tiers(t *testing.T) {
	h := sized(NewSponsors(testSite(t)), 80, 100)
	view := h.PlainView()

	gold := strings.Index(view, "Gold Sponsors")
	silver := strings.Index(view, "Silver Sponsors")
	require.True(t, gold >= 0 && silver > gold)
	require.Greater(t, strings.Index(view, "Whitby Tire & Service"), silver)
	require.Less(t, strings.Index(view, "Durham Chevrolet"), silver)

	// Sponsors without a website are not selectable.
	h.SendKeys("j", "j")
	got := actionOf(t, h, "enter").(action.OpenURL)
	require.Equal(t, "https://www.lakeshoreinsurance.ca", got.URL)
}

func TestCodeOfEthics(t *testing.T) {
	h := sized(NewCodeOfEthics(testSite(t)), 80, 100)
	view := h.PlainView()
	require.Contains(t, view, "Members are Expected to")
	require.Contains(t, view, "The Club Promises its Members to")
	require.Contains(t, view, "1. ")
	require.Contains(t, view, "adopted on March 14, 2006")

	// No links: enter does nothing.
	require.Nil(t, h.SendKey("enter"))
}

func TestInMemoriam(t *testing.T) {
	h := sized(NewInMemoriam(testSite(t)), 80, 100)
	view := h.PlainView()
	require.Contains(t, view, "Bob Anderson")
	require.Contains(t, view, "1948 - 2019")
	require.Contains(t, view, "Gone from our sight, but never from our hearts.")
}

func TestExecutive(t *testing.T) {
	h := sized(NewExecutive(testSite(t)), 80, 100)
	line := testutil.FindLine(h.PlainView(), "Dave Thompson")
	require.Contains(t, line, "President")
}

func TestNotFound(t *testing.T) {
	h := sized(NewNotFound(testSite(t), "/members"), 80, 40)
	require.Contains(t, h.PlainView(), "Page Not Found")
	require.Contains(t, h.PlainView(), "Requested: /members")
	require.Equal(t, action.Navigate{Path: route.Home}, actionOf(t, h, "enter"))
	h.SendKey("G")
	require.Equal(t, action.Navigate{Path: route.Sponsors}, actionOf(t, h, "enter"))
}

func TestTextPage_ScrollLockSuppressesScrolling(t *testing.T) {
	site := testSite(t)
	p := NewCodeOfEthics(site).(*textPage)
	h := sized(p, 60, 5)

	h.SendKey("j")
	require.Equal(t, 1, p.vp.YOffset)

	site.Lock.Hold("lightbox")
	h.SendKeys("j", "pgdown", "G")
	require.Equal(t, 1, p.vp.YOffset, "page scrolled while locked")

	site.Lock.Release("lightbox")
	h.SendKey("G")
	require.True(t, p.vp.AtBottom())
}

func TestTextPage_SelectionStaysVisible(t *testing.T) {
	p := NewNewsletters(testSite(t)).(*textPage)
	h := sized(p, 60, 6)
	h.SendKey("G")
	link, ok := p.Selected()
	require.True(t, ok)
	require.GreaterOrEqual(t, link.Line, p.vp.YOffset)
	require.Less(t, link.Line, p.vp.YOffset+p.vp.Height)
}

func newGalleryPage(t *testing.T) (*GalleryPage, *keymap.Bus, Site) {
	t.Helper()
	site := testSite(t)
	bus := keymap.NewBus()
	p := NewGallery(GalleryOptions{
		Site:         site,
		PreviewCount: 8,
		Resolver:     imageref.New("https://img.test", nil),
		Bus:          bus,
	})
	p.SetScreenSize(120, 40)
	p.SetSize(120, 38)
	p.Enter()
	return p, bus, site
}

func TestGalleryPage_MountsContentGalleries(t *testing.T) {
	p, _, _ := newGalleryPage(t)
	require.Len(t, p.Views(), 2)
	require.Equal(t, 8, p.Views()[0].Gallery().Grid().PreviewCount())
	require.Equal(t, 4, p.Views()[1].Gallery().Grid().PreviewCount(), "per-gallery preview count")

	view := testutil.StripANSI(p.View())
	require.Contains(t, view, "Club Events")
	require.Contains(t, view, "View All 15 Photos")

	h := testutil.NewHarness[Page](p)
	h.SendKey("tab")
	require.Equal(t, "Charity Show", p.Active().Title())
	require.Contains(t, testutil.StripANSI(p.View()), "View All 5 Photos")
	h.SendKey("tab")
	require.Equal(t, "Club Events", p.Active().Title())
}

func TestGalleryPage_LightboxLifecycle(t *testing.T) {
	p, bus, site := newGalleryPage(t)
	h := testutil.NewHarness[Page](p)

	h.Run(h.SendKey("enter"))
	require.True(t, p.LightboxOpen())
	require.True(t, site.Lock.Locked())
	require.Equal(t, []string{keymap.ContextLightbox}, p.HelpContexts())

	full, ok := p.FullScreen()
	require.True(t, ok)
	require.Contains(t, testutil.StripANSI(full), "1 / 15")

	// Tab goes to the viewer, which consumes it without switching galleries.
	require.True(t, bus.Dispatch("tab"))
	h.SendKey("tab")
	require.Equal(t, "Club Events", p.Active().Title())

	require.True(t, bus.Dispatch("right"))
	h.Run(p.Sync())
	full, _ = p.FullScreen()
	require.Contains(t, testutil.StripANSI(full), "2 / 15")

	p.Leave()
	require.False(t, site.Lock.Locked())
	require.False(t, bus.Active())
	require.Empty(t, p.Views())

	// Re-entering mounts fresh state.
	p.Enter()
	require.False(t, p.LightboxOpen())
}

func TestGalleryPage_Clicks(t *testing.T) {
	p, _, site := newGalleryPage(t)
	h := testutil.NewHarness[Page](p)
	click := func(x, y int) tea.Cmd {
		return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	}

	// "Club Events │ Charity Show"
	click(len("Club Events")+3, 0)
	require.Equal(t, "Charity Show", p.Active().Title())
	click(0, 0)
	require.Equal(t, "Club Events", p.Active().Title())

	// First tile, below the tab line and the grid heading.
	h.Run(click(2, tabsHeight+3))
	require.True(t, p.LightboxOpen())
	require.True(t, site.Lock.Locked())
	require.Equal(t, 0, p.Active().Gallery().Lightbox().Current())
}

func TestSet_Resolve(t *testing.T) {
	site := testSite(t)
	set := NewSet(site, NewGallery(GalleryOptions{Site: site}))

	require.Equal(t, route.Sponsors, set.Resolve("/sponsors/").Path())
	require.Same(t, set.Gallery(), set.Resolve("/gallery"))
	require.Equal(t, "Not Found", set.Resolve("/admin").Title())

	var paths []string
	set.Each(func(p Page) { paths = append(paths, p.Path()) })
	require.Len(t, paths, len(route.All))
}
