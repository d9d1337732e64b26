package gallery

import "github.com/llehouerou/clubview/internal/keymap"

var lightboxKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextLightbox))

// KeyController routes key events to a lightbox while it is open.
// It subscribes to the bus when the lightbox opens and unsubscribes when
// it closes, so no key reaches the lightbox while it is closed.
type KeyController struct {
	bus         *keymap.Bus
	box         *Lightbox
	unsubscribe func()
}

// NewKeyController creates a controller for box on bus and attaches it to
// the lightbox as an Effect.
func NewKeyController(bus *keymap.Bus, box *Lightbox) *KeyController {
	c := &KeyController{bus: bus, box: box}
	box.AddEffect(c)
	return c
}

// Subscribed reports whether the controller is currently listening.
func (c *KeyController) Subscribed() bool {
	return c.unsubscribe != nil
}

// Enter implements Effect.
func (c *KeyController) Enter() {
	if c.unsubscribe != nil || c.bus == nil {
		return
	}
	c.unsubscribe = c.bus.Subscribe(c.handle)
}

// Exit implements Effect.
func (c *KeyController) Exit() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
}

// handle translates a key into a lightbox intent. Every key is consumed
// while the lightbox is open since it is modal.
func (c *KeyController) handle(key string) bool {
	if !c.box.IsOpen() {
		return false
	}
	switch lightboxKeys.Resolve(key) {
	case keymap.ActionDismiss:
		c.box.Close()
	case keymap.ActionAdvance:
		c.box.Next()
	case keymap.ActionRetreat:
		c.box.Prev()
	case keymap.ActionFirst:
		c.box.JumpTo(0)
	case keymap.ActionLast:
		c.box.JumpTo(c.box.Len() - 1)
	}
	return true
}
