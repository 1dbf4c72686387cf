// Package pool implements generic, concurrency-safe object pooling
// (bounded, unbounded, and generation-based volatile variants) alongside
// the NUMA-segmented buffer pooling and ring buffering primitives that
// back a Factory[api.Buffer] instantiation of those pools.
//
// All primitives are cross-platform (Linux/Windows) and designed for
// low-latency, high-throughput reuse of transient allocations.
// See bufferpool.go, ring.go, slab_pool.go, bounded.go, unbounded.go, and
// volatile.go for implementation details.
package pool
