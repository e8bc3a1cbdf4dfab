package editor

import (
	"strings"
	"testing"
)

func TestLocker_LockIsExclusive(t *testing.T) {
	var l Locker
	owner := NewLockKey("table_processor_observer")
	other := NewLockKey("table_processor_observer")

	if !l.Lock(owner) {
		t.Fatal("Lock() on a free lock failed")
	}
	if l.Lock(other) {
		t.Error("Lock() succeeded for a second key with the same name")
	}
	if l.Holder() != owner {
		t.Errorf("Holder() = %v, want %v", l.Holder(), owner)
	}
}

func TestLocker_RelockBySameKeyIsNoop(t *testing.T) {
	var l Locker
	key := NewLockKey("drag")

	l.Lock(key)
	if !l.Lock(key) {
		t.Error("second Lock() by the holder failed")
	}

	l.Unlock()
	if l.IsLocked() {
		t.Error("lock is held after a single Unlock()")
	}
}

func TestLocker_IsLockedNotBy(t *testing.T) {
	var l Locker
	mine := NewLockKey("mine")
	theirs := NewLockKey("theirs")

	if l.IsLockedNotBy(mine) {
		t.Error("IsLockedNotBy() = true on a free lock")
	}

	l.Lock(mine)
	if l.IsLockedNotBy(mine) {
		t.Error("IsLockedNotBy(holder) = true")
	}
	if !l.IsLockedNotBy(theirs) {
		t.Error("IsLockedNotBy(other) = false")
	}
}

func TestLocker_UnlockAlwaysSucceeds(t *testing.T) {
	var l Locker
	l.Unlock()
	l.Unlock()

	l.Lock(NewLockKey("a"))
	l.Unlock()

	if l.IsLocked() || l.Holder() != nil {
		t.Error("lock still held after Unlock()")
	}
}

func TestLockKey_String(t *testing.T) {
	key := NewLockKey("table_processor_observer")

	if key.Name() != "table_processor_observer" {
		t.Errorf("Name() = %q", key.Name())
	}
	if !strings.HasPrefix(key.String(), "table_processor_observer#") {
		t.Errorf("String() = %q, want name#uuid", key.String())
	}

	var nilKey *LockKey
	if nilKey.Name() != "" || nilKey.String() != "<nil>" {
		t.Error("nil key does not format safely")
	}
}
