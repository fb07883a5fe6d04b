package idman

import "sync"

// SafeManager guards a Manager with a mutex and exposes the same
// operations atomically to multiple goroutines. Every mutation of the free
// set is linearized by the lock; no call holds the lock across anything
// that blocks.
type SafeManager[T IDType] struct {
	mu      sync.Mutex
	manager *Manager[T]
}

// NewSafeManager creates a locked manager over the full range of T.
func NewSafeManager[T IDType](policy ReusePolicy) *SafeManager[T] {
	return &SafeManager[T]{manager: NewManager[T](policy)}
}

// NewSafeManagerRange creates a locked manager over [minID,maxID].
func NewSafeManagerRange[T IDType](policy ReusePolicy, minID, maxID T) (*SafeManager[T], error) {
	m, err := NewManagerRange(policy, minID, maxID)
	if err != nil {
		return nil, err
	}
	return &SafeManager[T]{manager: m}, nil
}

// CanAllocate .
func (s *SafeManager[T]) CanAllocate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.CanAllocate()
}

// Allocate hands out one free id; see Manager.Allocate.
func (s *SafeManager[T]) Allocate() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Allocate()
}

// AllocateID allocates an id wrapped in a SmartID that frees it again on
// Close unless Release transfers ownership first. On ErrPoolExhausted no
// SmartID is constructed.
func (s *SafeManager[T]) AllocateID() (*SmartID[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.manager.Allocate()
	if err != nil {
		return nil, err
	}
	return &SmartID[T]{manager: s, id: id, owns: true}, nil
}

// Free returns id to the pool; see Manager.Free.
func (s *SafeManager[T]) Free(id T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Free(id)
}

// MarkValueAsUsed removes id from the free pool without handing it out.
func (s *SafeManager[T]) MarkValueAsUsed(id T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.MarkValueAsUsed(id)
}

// MarkIntervalAsUsed removes [lower,upper] from the free pool.
func (s *SafeManager[T]) MarkIntervalAsUsed(lower, upper T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.MarkIntervalAsUsed(lower, upper)
}

// Dump renders a consistent snapshot of the free set.
func (s *SafeManager[T]) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Dump()
}
