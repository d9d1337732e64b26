// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Page switching
	ActionPageHome       Action = "page_home"
	ActionPageExecutive  Action = "page_executive"
	ActionPageNewsletter Action = "page_newsletters"
	ActionPageGallery    Action = "page_gallery"
	ActionPageSponsors   Action = "page_sponsors"
	ActionPageEthics     Action = "page_code_of_ethics"
	ActionPageMemoriam   Action = "page_in_memoriam"
	ActionMembershipForm Action = "membership_form"
	ActionNextPage       Action = "next_page"
	ActionPrevPage       Action = "prev_page"

	// Page scrolling and selection
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select"    // enter
	ActionOpenLink  Action = "open_link" // o

	// Gallery grid
	ActionToggleShowAll Action = "toggle_show_all"
	ActionNextGallery   Action = "next_gallery"

	// Lightbox (bound only while the lightbox is open)
	ActionDismiss Action = "dismiss"
	ActionAdvance Action = "advance"
	ActionRetreat Action = "retreat"
	ActionFirst   Action = "first"
	ActionLast    Action = "last"
)
