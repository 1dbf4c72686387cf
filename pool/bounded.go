// File: pool/bounded.go

package pool

import (
	"sync"

	"github.com/momentics/objpool/api"
)

// boundedSlot is one fixed storage cell in a BoundedPool. Slots are never
// reallocated or moved once constructed, so pointers into them (held via
// shared visitation) remain stable for the pool's lifetime.
type boundedSlot[T any] struct {
	mu    sync.Mutex
	value T
	valid bool
}

// BoundedPool caps the number of instances it will ever construct at
// capacity. Acquire blocks until a slot becomes free once the pool is
// saturated.
type BoundedPool[T any] struct {
	factory Factory[T]
	slots   []boundedSlot[T]
	free    chan int32

	// visitMu coordinates Visit against outstanding Acquire borrows: every
	// borrowed slot holds a read lock for its entire lifetime, so Lock (for
	// an exclusive Visit) naturally blocks until all slots are idle again.
	visitMu sync.RWMutex
}

// NewBoundedPool returns a pool that constructs at most capacity instances
// via factory, reusing released instances once the pool is saturated.
func NewBoundedPool[T any](capacity int, factory Factory[T]) (*BoundedPool[T], error) {
	if capacity < 0 {
		return nil, api.ErrInvalidArgument
	}
	free := make(chan int32, capacity)
	for i := 0; i < capacity; i++ {
		free <- int32(i)
	}
	return &BoundedPool[T]{
		factory: factory,
		slots:   make([]boundedSlot[T], capacity),
		free:    free,
	}, nil
}

// Size returns the pool's fixed capacity.
func (p *BoundedPool[T]) Size() int {
	return len(p.slots)
}

// Acquire returns a Handle for an available slot, constructing a new
// instance via factory if the slot has never held one, or blocking until a
// slot is released if the pool is currently saturated. args are passed to
// factory only on construction; a reused instance never observes them.
func (p *BoundedPool[T]) Acquire(args ...any) (*Handle[T], error) {
	idx := <-p.free

	// The read lock is acquired only once a slot is actually in hand, and
	// held for the handle's entire borrow: an exclusive Visit blocks until
	// every borrowed slot releases, but never on Acquire calls merely
	// waiting for one to become free.
	p.visitMu.RLock()

	slot := &p.slots[idx]
	slot.mu.Lock()
	if !slot.valid {
		v, err := p.factory(args...)
		if err != nil {
			slot.mu.Unlock()
			p.free <- idx
			p.visitMu.RUnlock()
			return nil, err
		}
		slot.value = v
		slot.valid = true
	}
	value := slot.value
	slot.mu.Unlock()

	released := false
	var relMu sync.Mutex
	release := func(T) {
		relMu.Lock()
		defer relMu.Unlock()
		if released {
			return
		}
		released = true
		p.free <- idx
		p.visitMu.RUnlock()
	}

	return &Handle[T]{value: value, holding: true, release: release}, nil
}

// Visit calls visitor once for every constructed slot. If shared is true,
// Visit runs concurrently with outstanding Acquire borrows, taking each
// slot's own lock to read a consistent snapshot. If shared is false, Visit
// blocks until every outstanding handle has been released, then visits
// without further synchronization. Visitor returning false stops the scan.
func (p *BoundedPool[T]) Visit(visitor func(T) bool, shared bool) {
	if shared {
		for i := range p.slots {
			slot := &p.slots[i]
			slot.mu.Lock()
			valid := slot.valid
			v := slot.value
			slot.mu.Unlock()
			if valid && !visitor(v) {
				return
			}
		}
		return
	}

	p.visitMu.Lock()
	defer p.visitMu.Unlock()
	for i := range p.slots {
		slot := &p.slots[i]
		if slot.valid && !visitor(slot.value) {
			return
		}
	}
}
