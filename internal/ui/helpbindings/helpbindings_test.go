package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/clubview/internal/keymap"
	"github.com/llehouerou/clubview/internal/ui/action"
	"github.com/llehouerou/clubview/internal/ui/popup"
	"github.com/llehouerou/clubview/internal/ui/testutil"
)

func newTestHelpPopup(height int, contexts ...string) (*Model, *testutil.Harness[popup.Popup]) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return m, testutil.NewHarness[popup.Popup](m)
}

func assertClosed(t *testing.T, h *testutil.Harness[popup.Popup], key string) {
	t.Helper()
	msgs := testutil.Collect(h.SendKey(key))
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	actionMsg, ok := msgs[0].(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msgs[0])
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelpPopup(24, keymap.ContextGlobal)
			assertClosed(t, h, key)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(16, keymap.ContextGlobal, keymap.ContextPage, keymap.ContextGallery, keymap.ContextLightbox)

	h.SendKey("k")
	if m.offset != 0 {
		t.Errorf("offset = %d, scrolling up at top should do nothing", m.offset)
	}

	h.SendKeys("j", "j", "down")
	if m.offset != 3 {
		t.Errorf("offset = %d, want 3", m.offset)
	}

	h.SendKey("up")
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}

	for range 200 {
		h.SendKey("j")
	}
	if m.offset != m.maxScroll() {
		t.Errorf("offset = %d, want clamp to %d", m.offset, m.maxScroll())
	}
	if !strings.Contains(h.PlainView(), "j/k scroll") {
		t.Error("footer should mention scrolling when content overflows")
	}
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newTestHelpPopup(200, keymap.ContextLightbox, keymap.ContextGlobal)
	view := h.PlainView()

	for _, want := range []string{"Keys", "Global", "Photo Viewer", "esc, q", "Close", "?/esc close"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "j/k scroll") {
		t.Error("footer should not offer scrolling when everything fits")
	}
	if strings.Index(view, "Global") > strings.Index(view, "Photo Viewer") {
		t.Error("Global should appear before Photo Viewer regardless of SetContexts order")
	}
	if strings.Contains(view, "Photo Gallery") {
		t.Error("gallery context was not requested")
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{keymap.ContextGlobal})
	if m.View() != "" {
		t.Errorf("view = %q, want empty when no size", m.View())
	}
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	m, h := newTestHelpPopup(16, keymap.ContextGlobal, keymap.ContextPage, keymap.ContextGallery)
	h.SendKeys("j", "j")
	if m.offset == 0 {
		t.Fatal("expected to scroll")
	}
	m.SetContexts([]string{keymap.ContextGlobal})
	if m.offset != 0 {
		t.Errorf("offset = %d after SetContexts, want 0", m.offset)
	}
}
