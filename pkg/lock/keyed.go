// Package lock provides a per-name advisory mutex. The repository engine
// takes no locks of its own; in-process callers with concurrent mutators
// serialize per table with a Keyed lock instead. Cross-process callers need
// an external mechanism entirely.
package lock

import "sync"

// Keyed hands out one mutex per name, created on first use. The zero value
// is not usable; call New.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty Keyed lock set.
func New() *Keyed {
	return &Keyed{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for name, blocking until it is free.
func (k *Keyed) Lock(name string) {
	k.get(name).Lock()
}

// Unlock releases the mutex for name. It panics, like sync.Mutex, when the
// mutex is not held.
func (k *Keyed) Unlock(name string) {
	k.get(name).Unlock()
}

// get returns the mutex for name, creating it on first use.
func (k *Keyed) get(name string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[name]
	if !ok {
		m = &sync.Mutex{}
		k.locks[name] = m
	}
	return m
}
