package service

import (
	"sync"

	"github.com/google/uuid"
)

// ProfileLocks serializes read-modify-write sequences on one profile's blobs.
// Entries are dropped once no goroutine holds or waits for them.
type ProfileLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*profileLock
}

type profileLock struct {
	mu   sync.Mutex
	refs int
}

func NewProfileLocks() *ProfileLocks {
	return &ProfileLocks{locks: make(map[uuid.UUID]*profileLock)}
}

// Lock blocks until the profile is free and returns the matching unlock.
func (l *ProfileLocks) Lock(profileID uuid.UUID) (unlock func()) {
	l.mu.Lock()
	pl, ok := l.locks[profileID]
	if !ok {
		pl = &profileLock{}
		l.locks[profileID] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()
	return func() {
		pl.mu.Unlock()
		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.locks, profileID)
		}
		l.mu.Unlock()
	}
}

func (l *ProfileLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
