package gallery

import "testing"

func TestScrollLock_Idempotent(t *testing.T) {
	lock := NewScrollLock()
	owner := new(int)

	lock.Hold(owner)
	lock.Hold(owner)
	lock.Release(owner)
	if lock.Locked() {
		t.Error("one release should undo repeated holds by the same owner")
	}

	lock.Release(owner)
	if lock.Locked() {
		t.Error("extra release should be a no-op")
	}
}

func TestScrollLock_Nil(t *testing.T) {
	var lock *ScrollLock
	lock.Hold("x")
	lock.Release("x")
	if lock.Locked() {
		t.Error("nil lock is never locked")
	}
}

func TestScrollLock_ZeroValue(t *testing.T) {
	var lock ScrollLock
	lock.Release("x")
	lock.Hold("x")
	if !lock.Locked() {
		t.Error("zero lock should hold")
	}
	lock.Release("x")
	if lock.Locked() {
		t.Error("zero lock should release")
	}
}
