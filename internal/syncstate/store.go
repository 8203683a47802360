package syncstate

import (
	"sync"
)

// Ticket identifies one optimistic mutation
type Ticket struct {
	seq uint64
}

// FetchToken identifies one in-flight fetch
type FetchToken struct {
	seq uint64
}

type pendingMutation[T any] struct {
	snapshot T
	undo     func(T) T
}

// Store holds one piece of server-backed state with optimistic local edits.
// Every mutation and every fetch draws from the same increasing sequence, so
// a fetch that started before the newest local mutation cannot overwrite it.
type Store[T any] struct {
	mu    sync.Mutex
	value T
	clone func(T) T

	seq          uint64
	lastMutation uint64
	lastApplied  uint64
	pending      map[uint64]pendingMutation[T]
}

// NewStore creates a store. clone must deep-copy a value so snapshots do
// not alias the live state; nil means values are copied by assignment.
func NewStore[T any](initial T, clone func(T) T) *Store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Store[T]{
		value:   initial,
		clone:   clone,
		pending: make(map[uint64]pendingMutation[T]),
	}
}

// Get returns a copy of the current value
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clone(s.value)
}

// Mutate applies apply to a copy of the current value immediately. undo,
// which may be nil, reverses apply when a newer mutation has landed on top
// of this one by the time it is rolled back.
func (s *Store[T]) Mutate(apply, undo func(T) T) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.pending[s.seq] = pendingMutation[T]{snapshot: s.clone(s.value), undo: undo}
	s.value = apply(s.clone(s.value))
	s.lastMutation = s.seq
	return Ticket{seq: s.seq}
}

// Commit marks a mutation as confirmed by the server
func (s *Store[T]) Commit(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, t.seq)
}

// Rollback reverts a failed mutation. A fetch applied after the mutation
// already carries the server's state, so the value is left alone. Otherwise
// the pre-mutation snapshot is restored when no later mutation exists, and
// undo is applied on top of the newer state when one does. It reports
// whether the value changed.
func (s *Store[T]) Rollback(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.pending[t.seq]
	if !ok {
		return false
	}
	delete(s.pending, t.seq)

	if s.lastApplied > t.seq {
		return false
	}
	if t.seq == s.lastMutation {
		s.value = m.snapshot
		return true
	}
	if m.undo == nil {
		return false
	}
	s.value = m.undo(s.clone(s.value))
	return true
}

// Pending reports how many mutations await confirmation
func (s *Store[T]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// BeginFetch stamps a fetch before it is sent
func (s *Store[T]) BeginFetch() FetchToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return FetchToken{seq: s.seq}
}

// Reconcile replaces the value with a fetch result unless the fetch is
// stale: it began before the newest local mutation, or a fetch that began
// later has already been applied. It reports whether v was applied.
func (s *Store[T]) Reconcile(tok FetchToken, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok.seq < s.lastMutation || tok.seq < s.lastApplied {
		return false
	}
	s.value = v
	s.lastApplied = tok.seq
	return true
}

// Set replaces the value outright, as after an initial load
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.value = v
	s.lastApplied = s.seq
}
