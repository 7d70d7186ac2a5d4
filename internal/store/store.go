// Package store holds the client-side record store: every income,
// expense, and loan fetched for the authenticated session, kept
// consistent by pure reducers over typed actions. The store is a local
// cache of server state, scoped to the session and discarded on logout.
package store

import "sync"

// Store wraps the reducer state behind a mutex. The UI event loop is
// effectively single-threaded, but bubbletea delivers command results
// from goroutines, so dispatch has to be safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New creates an empty store.
func New() *Store {
	return &Store{state: NewState()}
}

// Dispatch applies an action and returns the resulting snapshot.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
