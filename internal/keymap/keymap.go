package keymap

// Binding maps keys to an action, with a description for help generation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "page", "gallery", "lightbox"
}

// Contexts in display order.
const (
	ContextGlobal   = "global"
	ContextPage     = "page"
	ContextGallery  = "gallery"
	ContextLightbox = "lightbox"
)

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionPageHome, []string{"f1", "1"}, "Home", ContextGlobal},
	{ActionPageExecutive, []string{"f2", "2"}, "Executive", ContextGlobal},
	{ActionPageNewsletter, []string{"f3", "3"}, "Newsletters", ContextGlobal},
	{ActionPageGallery, []string{"f4", "4"}, "Gallery", ContextGlobal},
	{ActionPageSponsors, []string{"f5", "5"}, "Club sponsors", ContextGlobal},
	{ActionPageEthics, []string{"f6", "6"}, "Code of ethics", ContextGlobal},
	{ActionPageMemoriam, []string{"f7", "7"}, "In memoriam", ContextGlobal},
	{ActionMembershipForm, []string{"m"}, "Open membership form", ContextGlobal},
	{ActionNextPage, []string{"]"}, "Next page", ContextGlobal},
	{ActionPrevPage, []string{"["}, "Previous page", ContextGlobal},

	// Page
	{ActionMoveDown, []string{"j", "down"}, "Scroll down / next item", ContextPage},
	{ActionMoveUp, []string{"k", "up"}, "Scroll up / previous item", ContextPage},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", ContextPage},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", ContextPage},
	{ActionJumpStart, []string{"g", "home"}, "Top", ContextPage},
	{ActionJumpEnd, []string{"G", "end"}, "Bottom", ContextPage},
	{ActionOpenLink, []string{"enter", "o"}, "Open link", ContextPage},

	// Gallery grid
	{ActionMoveLeft, []string{"h", "left"}, "Previous photo", ContextGallery},
	{ActionMoveRight, []string{"l", "right"}, "Next photo", ContextGallery},
	{ActionMoveUp, []string{"k", "up"}, "Row up", ContextGallery},
	{ActionMoveDown, []string{"j", "down"}, "Row down", ContextGallery},
	{ActionSelect, []string{"enter"}, "Open photo", ContextGallery},
	{ActionToggleShowAll, []string{"a"}, "View all / show less", ContextGallery},
	{ActionNextGallery, []string{"tab"}, "Next gallery", ContextGallery},

	// Lightbox
	{ActionDismiss, []string{"esc", "q"}, "Close", ContextLightbox},
	{ActionAdvance, []string{"right", "l", "pgdown"}, "Next photo", ContextLightbox},
	{ActionRetreat, []string{"left", "h", "pgup"}, "Previous photo", ContextLightbox},
	{ActionFirst, []string{"home", "g"}, "First photo", ContextLightbox},
	{ActionLast, []string{"end", "G"}, "Last photo", ContextLightbox},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of the given contexts, later contexts
// overriding earlier ones for shared keys when fed to NewResolver.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, ctx := range contexts {
		result = append(result, ByContext(ctx)...)
	}
	return result
}
