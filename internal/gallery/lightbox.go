package gallery

import "fmt"

// State is a lightbox state.
type State int

const (
	// Closed is the initial state: only the grid is visible.
	Closed State = iota
	// Open shows one enlarged photo in a modal overlay.
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Effect is run on the lightbox's state edges.
// Enter runs on Closed -> Open and Exit on every transition into Closed.
// Implementations must tolerate Exit without a preceding Enter.
type Effect interface {
	Enter()
	Exit()
}

// Lightbox is the open/closed and current-index state for one collection.
type Lightbox struct {
	length  int
	state   State
	current int
	effects []Effect
}

// NewLightbox creates a closed lightbox over a collection of length n.
func NewLightbox(n int, effects ...Effect) *Lightbox {
	return &Lightbox{
		length:  max(n, 0),
		effects: effects,
	}
}

// AddEffect attaches an effect. If the lightbox is already open the
// effect's Enter runs immediately so Enter/Exit stay paired.
func (l *Lightbox) AddEffect(e Effect) {
	l.effects = append(l.effects, e)
	if l.state == Open {
		e.Enter()
	}
}

// State returns the current state.
func (l *Lightbox) State() State {
	return l.state
}

// IsOpen reports whether the lightbox is open.
func (l *Lightbox) IsOpen() bool {
	return l.state == Open
}

// Current returns the index of the displayed photo in the full collection.
func (l *Lightbox) Current() int {
	return l.current
}

// Len returns the collection length.
func (l *Lightbox) Len() int {
	return l.length
}

// Counter returns the positional text "{current+1} / {length}".
func (l *Lightbox) Counter() string {
	return fmt.Sprintf("%d / %d", l.current+1, l.length)
}

func (l *Lightbox) valid(i int) bool {
	return i >= 0 && i < l.length
}

// Open opens the lightbox at index i. It is rejected when the lightbox is
// already open or i is out of range, which includes every index of an
// empty collection.
func (l *Lightbox) Open(i int) bool {
	if l.state == Open || !l.valid(i) {
		return false
	}
	l.current = i
	l.state = Open
	for _, e := range l.effects {
		e.Enter()
	}
	return true
}

// Close closes the lightbox. Exit effects run only on an actual
// transition; use Teardown to force them.
func (l *Lightbox) Close() bool {
	if l.state != Open {
		return false
	}
	l.state = Closed
	l.runExit()
	return true
}

// Next advances to the following photo, wrapping to the first.
func (l *Lightbox) Next() bool {
	if l.state != Open || l.length == 0 {
		return false
	}
	l.current = (l.current + 1) % l.length
	return true
}

// Prev moves to the preceding photo, wrapping to the last.
func (l *Lightbox) Prev() bool {
	if l.state != Open || l.length == 0 {
		return false
	}
	l.current = (l.current - 1 + l.length) % l.length
	return true
}

// JumpTo shows photo i directly. Out-of-range indices are rejected.
func (l *Lightbox) JumpTo(i int) bool {
	if l.state != Open || !l.valid(i) {
		return false
	}
	l.current = i
	return true
}

// Teardown closes the lightbox and runs every Exit effect regardless of
// the current state. It is called when the owning gallery is unmounted.
func (l *Lightbox) Teardown() {
	l.state = Closed
	l.runExit()
}

func (l *Lightbox) runExit() {
	for i := len(l.effects) - 1; i >= 0; i-- {
		l.effects[i].Exit()
	}
}
