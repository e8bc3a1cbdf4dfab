package editor

import (
	"sync"

	"github.com/google/uuid"
)

// LockKey is the capability a subsystem uses to take the editor lock.
// Subsystems compare keys, never names, to decide who holds the lock.
type LockKey struct {
	name string
	id   uuid.UUID
}

// NewLockKey creates a key. The name is for logs only; two keys with the
// same name are still different keys.
func NewLockKey(name string) *LockKey {
	return &LockKey{name: name, id: uuid.New()}
}

// Name returns the name the key was created with.
func (k *LockKey) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// String returns the name and the unique id of the key.
func (k *LockKey) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.name + "#" + k.id.String()
}

// Locker is an advisory, non-reentrant editor lock. Cooperating code checks
// it before running behavior that would fight the holder, such as native
// text selection during a cell drag.
type Locker struct {
	mu     sync.Mutex
	holder *LockKey
}

// Lock takes the lock for key. Taking a lock the key already holds is a
// no-op that succeeds; Lock fails only when another key holds it.
func (l *Locker) Lock(key *LockKey) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.holder != nil && l.holder != key {
		return false
	}
	l.holder = key
	return true
}

// Unlock releases the lock whoever holds it. It always succeeds.
func (l *Locker) Unlock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.holder = nil
}

// IsLocked reports whether any key holds the lock.
func (l *Locker) IsLocked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.holder != nil
}

// IsLockedNotBy reports whether a key other than key holds the lock.
func (l *Locker) IsLockedNotBy(key *LockKey) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.holder != nil && l.holder != key
}

// Holder returns the key holding the lock, or nil.
func (l *Locker) Holder() *LockKey {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.holder
}
