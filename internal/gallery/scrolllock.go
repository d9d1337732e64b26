package gallery

// ScrollLock suppresses background page scrolling while any holder has it.
// Holding and releasing are idempotent per holder, so repeated open/close
// sequences always leave the lock in a consistent state. The zero value is
// an unlocked lock.
type ScrollLock struct {
	holders map[any]struct{}
}

// NewScrollLock creates an unlocked scroll lock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{holders: make(map[any]struct{})}
}

// Hold registers holder. Holding twice is the same as holding once.
func (s *ScrollLock) Hold(holder any) {
	if s == nil {
		return
	}
	if s.holders == nil {
		s.holders = make(map[any]struct{})
	}
	s.holders[holder] = struct{}{}
}

// Release removes holder. Releasing a non-holder is a no-op.
func (s *ScrollLock) Release(holder any) {
	if s == nil {
		return
	}
	delete(s.holders, holder)
}

// Locked reports whether background scrolling is suppressed.
func (s *ScrollLock) Locked() bool {
	return s != nil && len(s.holders) > 0
}

// lockEffect binds a scroll lock to a lightbox's edges.
type lockEffect struct {
	lock  *ScrollLock
	owner any
}

func (e lockEffect) Enter() { e.lock.Hold(e.owner) }
func (e lockEffect) Exit()  { e.lock.Release(e.owner) }

// LockEffect returns an Effect holding lock on behalf of owner while the
// lightbox is open.
func LockEffect(lock *ScrollLock, owner any) Effect {
	return lockEffect{lock: lock, owner: owner}
}
