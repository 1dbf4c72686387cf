package pool

import (
	"testing"

	"github.com/momentics/objpool/api"
)

// TestUnboundedPoolOfBuffersReusesSlabAllocation exercises a generic pool
// constructed over api.Buffer: the UnboundedPool tracks which Buffer
// handles are currently on loan, while the underlying slabPool tracks
// which byte allocations are idle. Releasing a Handle's buffer back to the
// slab and then releasing the handle itself should leave both layers able
// to satisfy the next Acquire without a fresh allocation.
func TestUnboundedPoolOfBuffersReusesSlabAllocation(t *testing.T) {
	allocs := 0
	var sp *slabPool
	sp = NewSlabPool(64, func(size, numaNode int) api.Buffer {
		allocs++
		return &fakeBuffer{data: make([]byte, size), pool: sp}
	}, nil)

	factory := func(args ...any) (api.Buffer, error) {
		return sp.Get(64, -1), nil
	}

	p, err := NewUnboundedPool(1, factory)
	if err != nil {
		t.Fatal(err)
	}

	h, err := p.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	buf := h.Get()
	buf.Release()
	h.Reset()

	h2, err := p.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if h2.Get() != buf {
		t.Fatal("expected the same Buffer handle to be reused from the pool's cache")
	}
	if allocs != 1 {
		t.Fatalf("expected the slab to allocate exactly once, got %d", allocs)
	}

	stats := sp.Stats()
	if stats.TotalAlloc != 1 || stats.TotalFree != 1 {
		t.Fatalf("expected the slab itself to have recorded the buffer's own release, got %+v", stats)
	}
}
