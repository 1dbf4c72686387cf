// File: pool/volatile.go

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/objpool/api"
)

// generation is one epoch of a VolatilePool's idle-instance cache. Clear(true)
// detaches the current generation and starts a fresh one; handles already
// borrowed from a detached generation keep it reachable via their release
// closures until they are released, at which point it is torn down for
// real rather than cached back into its own free list.
type generation[T any] struct {
	mu       sync.Mutex
	free     *freeList[T]
	orphaned bool

	// count is a live-handle refcount: every Acquire increments it and
	// every corresponding release decrements it, independent of whether
	// the released value ends up cached or destroyed. Caching an instance
	// back into the free list does not hold the count up, since the
	// handle that produced that +1 is exactly the one being released.
	count atomic.Int64
}

func newGeneration[T any](capacity int) *generation[T] {
	return &generation[T]{free: newFreeList[T](capacity)}
}

// release returns v to this generation: if the generation has been
// orphaned by a detaching Clear, v is destroyed outright; otherwise it is
// cached if the idle cache has room, and destroyed if not.
func (g *generation[T]) release(v T) {
	g.mu.Lock()
	if g.orphaned {
		g.mu.Unlock()
		destroy(v)
		g.count.Add(-1)
		return
	}
	cached := g.free.push(v)
	g.mu.Unlock()
	if !cached {
		destroy(v)
	}
	g.count.Add(-1)
}

// clear destroys every idle cached instance in this generation. If detach
// is true, the generation is first marked orphaned under mu (so any
// concurrent release of a still-outstanding handle destroys its value
// instead of caching it) before the free list is drained.
func (g *generation[T]) clear(detach bool) {
	if detach {
		g.mu.Lock()
		g.orphaned = true
		g.mu.Unlock()
	}
	for _, v := range g.free.drain() {
		destroy(v)
	}
}

// VolatilePool behaves like UnboundedPool, but supports atomically
// replacing its entire idle-instance generation: handles borrowed before a
// detaching Clear keep their original generation alive via their release
// closures and return their values into it for destruction, never back
// into the pool's new generation.
type VolatilePool[T any] struct {
	factory  Factory[T]
	capacity int

	mu  sync.Mutex
	gen *generation[T]
}

// NewVolatilePool returns a pool that caches up to capacity idle instances
// per generation via factory.
func NewVolatilePool[T any](capacity int, factory Factory[T]) (*VolatilePool[T], error) {
	if capacity < 0 {
		return nil, api.ErrInvalidArgument
	}
	return &VolatilePool[T]{
		factory:  factory,
		capacity: capacity,
		gen:      newGeneration[T](capacity),
	}, nil
}

// Size returns the idle-cache capacity per generation.
func (p *VolatilePool[T]) Size() int {
	return p.capacity
}

func (p *VolatilePool[T]) currentGeneration() *generation[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

// GenerationSize returns the number of instances currently on loan from the
// pool's current generation.
func (p *VolatilePool[T]) GenerationSize() int64 {
	return p.currentGeneration().count.Load()
}

// Acquire returns a Handle bound to the pool's current generation, reusing
// a cached instance if one is idle or constructing a fresh one via factory
// otherwise. args are only observed on construction.
func (p *VolatilePool[T]) Acquire(args ...any) (*Handle[T], error) {
	g := p.currentGeneration()
	g.count.Add(1)

	if v, ok := g.free.pop(); ok {
		return &Handle[T]{value: v, holding: true, release: g.release}, nil
	}

	v, err := p.factory(args...)
	if err != nil {
		g.count.Add(-1)
		return nil, err
	}
	return &Handle[T]{value: v, holding: true, release: g.release}, nil
}

// Clear releases the pool's idle cached instances. If detach is true, the
// current generation is replaced with a fresh, empty one: subsequently
// acquired handles come from the new generation, while handles already on
// loan from the old one still belong to it and destroy their values on
// release instead of returning them to a pool anyone else can observe.
func (p *VolatilePool[T]) Clear(detach bool) {
	p.mu.Lock()
	g := p.gen
	if detach {
		p.gen = newGeneration[T](p.capacity)
	}
	p.mu.Unlock()

	g.clear(detach)
}
