package selection

import (
	"log"
	"sync"

	"rangebar/internal/domain"
)

type observerEntry struct {
	id uint64
	fn Observer
}

// Machine owns the selected index pair. The tick count bounding it is read
// through a TickCountSource and never copied.
type Machine struct {
	mu        sync.Mutex
	ticks     TickCountSource
	sel       domain.Indices
	phase     Phase
	observers []observerEntry
	nextID    uint64
	notifying bool
}

// New creates a machine selecting the whole bar, [0, tickCount-1]
func New(ticks TickCountSource) *Machine {
	return &Machine{
		ticks: ticks,
		sel:   domain.Indices{Left: 0, Right: ticks.TickCount() - 1},
	}
}

// OnRangeChange registers an observer. Observers are called synchronously,
// in registration order, once per accepted mutation.
func (m *Machine) OnRangeChange(fn Observer) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.observers = append(m.observers, observerEntry{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

// SetIndices accepts the pair iff 0 <= left <= right < tickCount. A rejected
// pair leaves the state untouched and notifies nobody.
func (m *Machine) SetIndices(left, right int) error {
	m.mu.Lock()
	if m.notifying {
		m.mu.Unlock()
		return ErrReentrant
	}

	tickCount := m.ticks.TickCount()
	next := domain.Indices{Left: left, Right: right}
	if !next.Within(tickCount) {
		m.mu.Unlock()
		return &RangeError{Left: left, Right: right, TickCount: tickCount}
	}

	m.sel = next
	m.notifyLocked(next)
	return nil
}

// OnTickCountChanged re-clamps the selection after the tick count became n.
// Counts below two are rejected.
func (m *Machine) OnTickCountChanged(n int) error {
	if n < 2 {
		return ErrInvalidTickCount
	}

	m.mu.Lock()
	if m.notifying {
		m.mu.Unlock()
		return ErrReentrant
	}

	next := m.sel
	if next.Right > n-1 {
		next.Right = n - 1
	}
	if next.Left > next.Right {
		next.Left = next.Right
	}

	if next == m.sel {
		m.mu.Unlock()
		return nil
	}

	log.Printf("selection: clamped %s to %s for %d ticks", m.sel, next, n)
	m.sel = next
	m.notifyLocked(next)
	return nil
}

// notifyLocked releases m.mu and delivers sel to a snapshot of the observers
func (m *Machine) notifyLocked(sel domain.Indices) {
	observers := make([]observerEntry, len(m.observers))
	copy(observers, m.observers)
	m.notifying = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.notifying = false
		m.mu.Unlock()
	}()

	for _, o := range observers {
		o.fn(sel)
	}
}

// CurrentIndices returns the committed pair
func (m *Machine) CurrentIndices() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sel.Left, m.sel.Right
}

// Selection returns the committed pair as a value
func (m *Machine) Selection() domain.Indices {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sel
}

// BeginDrag marks a thumb as pressed
func (m *Machine) BeginDrag() {
	m.mu.Lock()
	m.phase = Dragging
	m.mu.Unlock()
}

// EndDrag marks the thumbs as released
func (m *Machine) EndDrag() {
	m.mu.Lock()
	m.phase = Idle
	m.mu.Unlock()
}

// Phase returns whether a drag is in progress
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}
