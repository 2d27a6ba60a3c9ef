package engine

import "sync"

// keyedLocks serializes work per session key. The SMS/USSD gateway does
// not serialize retries itself, so without this a second message for
// the same phone could race the first's read-modify-write and lose an
// update. Entries are reference-counted and removed when idle.
type keyedLocks struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{held: make(map[string]*lockEntry)}
}

// Lock acquires the lock for key and returns the unlock function.
func (l *keyedLocks) Lock(key string) func() {
	l.mu.Lock()
	e, ok := l.held[key]
	if !ok {
		e = &lockEntry{}
		l.held[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.held, key)
		}
		l.mu.Unlock()
	}
}
