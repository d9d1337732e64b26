package gallery

import "github.com/llehouerou/clubview/internal/keymap"

// Gallery is one mounted gallery: a titled grid plus its lightbox, key
// controller and scroll-lock binding. Each mount owns its state; nothing
// is shared between mounts except the bus and lock they are given.
type Gallery struct {
	Title string
	grid  Grid
	box   *Lightbox
	keys  *KeyController
}

// Mount creates a gallery over images. bus and lock may be nil, in which
// case keys and scroll locking are not wired.
func Mount(title string, images []string, previewCount int, bus *keymap.Bus, lock *ScrollLock) *Gallery {
	g := &Gallery{
		Title: title,
		grid:  NewGrid(images, previewCount),
	}
	g.box = NewLightbox(g.grid.Len())
	if lock != nil {
		g.box.AddEffect(LockEffect(lock, g))
	}
	g.keys = NewKeyController(bus, g.box)
	return g
}

// Grid returns the grid state.
func (g *Gallery) Grid() Grid {
	return g.grid
}

// Lightbox returns the lightbox state machine.
func (g *Gallery) Lightbox() *Lightbox {
	return g.box
}

// Keys returns the key controller.
func (g *Gallery) Keys() *KeyController {
	return g.keys
}

// Toggle flips the grid between preview and full collection. It never
// touches the lightbox.
func (g *Gallery) Toggle() {
	g.grid.Toggle()
}

// Activate opens the lightbox for the displayed item at displayPos.
func (g *Gallery) Activate(displayPos int) bool {
	idx, ok := g.grid.IndexOf(displayPos)
	if !ok {
		return false
	}
	return g.box.Open(idx)
}

// CurrentImage returns the identifier shown in the lightbox.
func (g *Gallery) CurrentImage() (string, bool) {
	if !g.box.IsOpen() {
		return "", false
	}
	return g.grid.At(g.box.Current())
}

// Unmount tears the lightbox down, releasing the scroll lock and key
// subscription if held.
func (g *Gallery) Unmount() {
	g.box.Teardown()
}
