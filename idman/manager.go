package idman

// ReusePolicy decides which free id Allocate hands out next. The policy is
// fixed for the manager's lifetime.
type ReusePolicy int

const (
	// ReuseFast always hands out the numerically lowest free id.
	ReuseFast ReusePolicy = iota
	// ReuseSlow round-robins a cursor through the id space, so a freed id
	// is not reissued until the cursor comes back around to it.
	ReuseSlow
)

// Manager owns the free set over a bounded id range. Every id in
// [minID,maxID] is either free or allocated, never both.
//
// A Manager is not safe for concurrent use; see SafeManager.
type Manager[T IDType] struct {
	free   *IntervalSet[T]
	policy ReusePolicy
	next   T // ReuseSlow allocation cursor, always within [minID,maxID]
	minID  T
	maxID  T
}

// NewManager creates a manager over the full range of T, all ids free.
func NewManager[T IDType](policy ReusePolicy) *Manager[T] {
	m, _ := NewManagerRange(policy, minValue[T](), maxValue[T]())
	return m
}

// NewManagerRange creates a manager over the inclusive range [minID,maxID],
// all ids free. It fails with ErrMalformedRange if maxID < minID.
func NewManagerRange[T IDType](policy ReusePolicy, minID, maxID T) (*Manager[T], error) {
	if maxID < minID {
		return nil, ErrMalformedRange
	}
	free := NewIntervalSet[T]()
	free.InsertInterval(minID, maxID)
	return &Manager[T]{
		free:   free,
		policy: policy,
		next:   minID,
		minID:  minID,
		maxID:  maxID,
	}, nil
}

// CanAllocate reports whether at least one id is free.
func (m *Manager[T]) CanAllocate() bool {
	return !m.free.IsEmpty()
}

// Allocate hands out one free id under the manager's reuse policy. It
// fails with ErrPoolExhausted when every id is in use.
func (m *Manager[T]) Allocate() (T, error) {
	if m.free.IsEmpty() {
		var zero T
		return zero, ErrPoolExhausted
	}

	if m.policy == ReuseFast {
		return m.free.RemoveFirstValue()
	}

	// ReuseSlow: walk the cursor until it lands on a free id. The set is
	// known non-empty, so the walk terminates within one trip around the
	// range.
	for !m.free.RemoveValue(m.next) {
		m.next = m.increment(m.next)
	}
	id := m.next
	m.next = m.increment(m.next)
	return id, nil
}

// increment steps the cursor one id, wrapping past maxID back to minID.
func (m *Manager[T]) increment(id T) T {
	if id == m.maxID {
		return m.minID
	}
	return id + 1
}

// Free returns id to the pool. It fails with ErrOutOfRange for ids outside
// the manager's range and with ErrNotAllocated when the id is already free.
func (m *Manager[T]) Free(id T) error {
	if id < m.minID || id > m.maxID {
		return ErrOutOfRange
	}
	if !m.free.InsertValue(id) {
		return ErrNotAllocated
	}
	return nil
}

// MarkValueAsUsed removes id from the free pool without handing it to a
// caller, e.g. to pre-reserve well-known ids at startup. Marking an id
// that is already in use is a no-op.
func (m *Manager[T]) MarkValueAsUsed(id T) error {
	if id < m.minID || id > m.maxID {
		return ErrOutOfRange
	}
	m.free.RemoveValue(id)
	return nil
}

// MarkIntervalAsUsed removes every id of [lower,upper] from the free pool.
// Ids in the range that are already in use are skipped.
func (m *Manager[T]) MarkIntervalAsUsed(lower, upper T) error {
	if lower < m.minID || lower > m.maxID {
		return ErrOutOfRange
	}
	if upper < m.minID || upper > m.maxID {
		return ErrOutOfRange
	}
	return m.free.RemoveInterval(lower, upper)
}

// Dump renders the free set in ascending order; see IntervalSet.String.
func (m *Manager[T]) Dump() string {
	return m.free.String()
}
