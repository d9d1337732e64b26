package keymap

import "testing"

func TestResolver_GlobalKeys(t *testing.T) {
	r := NewResolver(ByContext(ContextGlobal))

	tests := map[string]Action{
		"q":      ActionQuit,
		"ctrl+c": ActionQuit,
		"?":      ActionHelp,
		"f4":     ActionPageGallery,
		"4":      ActionPageGallery,
		"m":      ActionMembershipForm,
		"]":      ActionNextPage,
		"[":      ActionPrevPage,
		"j":      "",
		"":       "",
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver(ForContexts(ContextGlobal, ContextLightbox))

	// "q" quits globally but dismisses inside the lightbox.
	if got := r.Resolve("q"); got != ActionDismiss {
		t.Errorf("Resolve(q) = %q, want %q", got, ActionDismiss)
	}
}

func TestByContext(t *testing.T) {
	for _, ctx := range []string{ContextGlobal, ContextPage, ContextGallery, ContextLightbox} {
		bindings := ByContext(ctx)
		if len(bindings) == 0 {
			t.Errorf("ByContext(%q) returned no bindings", ctx)
		}
		for _, b := range bindings {
			if b.Context != ctx {
				t.Errorf("binding context = %q, want %q", b.Context, ctx)
			}
		}
	}
	if got := ByContext("unknown"); len(got) != 0 {
		t.Errorf("ByContext(unknown) returned %d bindings", len(got))
	}
}

func TestLightboxBindings(t *testing.T) {
	r := NewResolver(ByContext(ContextLightbox))

	tests := map[string]Action{
		"esc":   ActionDismiss,
		"right": ActionAdvance,
		"left":  ActionRetreat,
		"home":  ActionFirst,
		"end":   ActionLast,
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}
