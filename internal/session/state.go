// Package session holds the process-wide authentication state observable.
package session

import (
	"sync"

	"happenly/internal/domain"
)

// Snapshot is the authentication state at a point in time. User is nil when
// signed out. Loading is true until the first transition is published.
type Snapshot struct {
	User    *domain.User
	Loading bool
}

// Listener receives every published snapshot.
type Listener func(Snapshot)

// State is an explicit observable of the signed-in user. The zero value is
// not usable; call NewState.
type State struct {
	mu        sync.Mutex
	current   Snapshot
	listeners map[int]Listener
	nextID    int
}

// NewState returns a State in the loading phase.
func NewState() *State {
	return &State{
		current:   Snapshot{Loading: true},
		listeners: make(map[int]Listener),
	}
}

// Current returns the latest snapshot.
func (s *State) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Publish records a transition and notifies listeners. Listeners run on the
// caller's goroutine, outside the lock.
func (s *State) Publish(user *domain.User) {
	s.mu.Lock()
	s.current = Snapshot{User: user}
	snap := s.current
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// Subscribe registers fn and returns a func that removes it. If a transition
// has already been published, fn is called once right away with the current
// snapshot.
func (s *State) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	snap := s.current
	s.mu.Unlock()

	if !snap.Loading {
		fn(snap)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
