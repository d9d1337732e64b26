// Package gallery implements the photo gallery behind the gallery page:
// a bounded preview grid over an ordered image collection and a modal
// lightbox with wraparound navigation.
//
// The lightbox is a two-state machine (Closed, Open). Side effects that
// must be symmetric, such as locking background scrolling and routing
// keys to the lightbox, are attached as Effects and run on the Open and
// Closed edges, so every path into Closed undoes what entering Open did.
package gallery
