// File: pool/unbounded.go

package pool

import (
	"github.com/momentics/objpool/api"
)

// UnboundedPool never blocks Acquire: it always hands out a value, reusing
// one cached from a prior release when available and constructing a fresh
// one via factory otherwise. Whether a released value ends up cached is
// decided at release time, not at acquire time: it is cached only while
// the pool's idle cache has not yet reached capacity, regardless of
// whether the pool looked "full" by some other measure when the value was
// constructed.
type UnboundedPool[T any] struct {
	factory  Factory[T]
	capacity int
	free     *freeList[T]
}

// NewUnboundedPool returns a pool that caches up to capacity idle instances
// for reuse via factory.
func NewUnboundedPool[T any](capacity int, factory Factory[T]) (*UnboundedPool[T], error) {
	if capacity < 0 {
		return nil, api.ErrInvalidArgument
	}
	return &UnboundedPool[T]{
		factory:  factory,
		capacity: capacity,
		free:     newFreeList[T](capacity),
	}, nil
}

// Size returns the pool's idle-cache capacity.
func (p *UnboundedPool[T]) Size() int {
	return p.capacity
}

// Acquire returns a Handle wrapping a cached instance if one is idle, or a
// freshly constructed one via factory with args otherwise.
func (p *UnboundedPool[T]) Acquire(args ...any) (*Handle[T], error) {
	if v, ok := p.free.pop(); ok {
		return &Handle[T]{value: v, holding: true, release: p.release}, nil
	}
	v, err := p.factory(args...)
	if err != nil {
		return nil, err
	}
	return &Handle[T]{value: v, holding: true, release: p.release}, nil
}

// release caches v for reuse if the idle cache has room, or destroys it
// otherwise.
func (p *UnboundedPool[T]) release(v T) {
	if !p.free.push(v) {
		destroy(v)
	}
}

// Clear destroys every currently idle instance, leaving outstanding
// borrows untouched; they are handled individually as they are released.
func (p *UnboundedPool[T]) Clear() {
	for _, v := range p.free.drain() {
		destroy(v)
	}
}
