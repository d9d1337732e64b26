package gallery

// IntentKind names a lightbox intent.
type IntentKind int

const (
	IntentOpen IntentKind = iota
	IntentClose
	IntentNext
	IntentPrev
	IntentJump
)

func (k IntentKind) String() string {
	switch k {
	case IntentOpen:
		return "open"
	case IntentClose:
		return "close"
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	case IntentJump:
		return "jumpTo"
	default:
		return "unknown"
	}
}

// Intent is a request to change lightbox state. Index is used by
// IntentOpen and IntentJump.
type Intent struct {
	Kind  IntentKind
	Index int
}

// OpenAt returns an open intent for index i.
func OpenAt(i int) Intent { return Intent{Kind: IntentOpen, Index: i} }

// JumpTo returns a jump intent for index i.
func JumpTo(i int) Intent { return Intent{Kind: IntentJump, Index: i} }

// Apply performs intent on the lightbox and reports whether state changed.
func (l *Lightbox) Apply(in Intent) bool {
	switch in.Kind {
	case IntentOpen:
		return l.Open(in.Index)
	case IntentClose:
		return l.Close()
	case IntentNext:
		return l.Next()
	case IntentPrev:
		return l.Prev()
	case IntentJump:
		return l.JumpTo(in.Index)
	}
	return false
}
