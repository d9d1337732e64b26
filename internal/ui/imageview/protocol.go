package imageview

import "image"

// Protocol abstracts the terminal image display protocol (Kitty or Sixel).
type Protocol interface {
	// Name identifies the protocol in logs and the status line.
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col).
	// Kitty: references by ID.
	// Sixel: emits full image data with cursor positioning.
	Place(id uint32, row, col, width, height int) string

	// Delete returns the escape sequence to remove the image.
	// Sixel: drops cached data and returns "".
	Delete(id uint32) string

	// TargetPixelSize returns the pixel dimensions to use when resizing an
	// image shown in the given number of terminal cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
