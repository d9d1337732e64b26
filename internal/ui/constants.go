// Package ui provides shared layout constants and the Base component.
package ui

// Layout constants shared by the page views.
const (
	// ScrollMargin is the number of rows kept visible around a list cursor.
	ScrollMargin = 2

	// StatusHeight is the bottom line with key hints or a status message.
	StatusHeight = 1

	// ChromeHeight is the vertical space taken by the header and status
	// lines; pages get the rest.
	ChromeHeight = 1 + StatusHeight

	// MaxContentWidth caps the text column on wide terminals.
	MaxContentWidth = 100

	// MinGalleryWidth is the narrowest layout that still shows tiles.
	MinGalleryWidth = 24
)
