// File: pool/handle.go

package pool

import "sync/atomic"

// Handle is an exclusive, single-owner lease on a pooled value. A Handle is
// not safe for concurrent use by multiple goroutines; ownership transfers
// via Move, never by copying the struct.
type Handle[T any] struct {
	value   T
	holding bool
	release func(T)
}

// Get returns the leased value. Calling Get on a Handle that is not Ok
// returns the zero value of T.
func (h *Handle[T]) Get() T {
	if h == nil || !h.holding {
		var zero T
		return zero
	}
	return h.value
}

// Ok reports whether this handle currently owns a value.
func (h *Handle[T]) Ok() bool {
	return h != nil && h.holding
}

// Reset releases the held value back to its pool, if any, and empties the
// handle. Reset is idempotent.
func (h *Handle[T]) Reset() {
	if h == nil || !h.holding {
		return
	}
	v := h.value
	rel := h.release
	h.holding = false
	h.release = nil
	var zero T
	h.value = zero
	if rel != nil {
		rel(v)
	}
}

// Move transfers ownership of the held value into a newly returned Handle
// and empties the receiver. Go assignment does not empty its source, so
// Move is the explicit stand-in for move semantics.
func (h *Handle[T]) Move() *Handle[T] {
	if h == nil || !h.holding {
		return &Handle[T]{}
	}
	moved := &Handle[T]{value: h.value, holding: true, release: h.release}
	h.holding = false
	h.release = nil
	var zero T
	h.value = zero
	return moved
}

// ReleaseAsShared converts an exclusive handle into a reference-counted
// SharedHandle with an initial refcount of 1, and empties the receiver.
// The returned SharedHandle must eventually be Reset to release the value.
func (h *Handle[T]) ReleaseAsShared() *SharedHandle[T] {
	if h == nil || !h.holding {
		return &SharedHandle[T]{}
	}
	core := &sharedCore[T]{value: h.value, release: h.release}
	core.refs.Store(1)
	h.holding = false
	h.release = nil
	var zero T
	h.value = zero
	return &SharedHandle[T]{core: core}
}

// sharedCore holds the reference-counted state shared by all clones of a
// SharedHandle lineage.
type sharedCore[T any] struct {
	value   T
	release func(T)
	refs    atomic.Int64
}

// SharedHandle is a reference-counted, shareable lease on a pooled value.
// Unlike Handle, a SharedHandle may be duplicated via Clone; the underlying
// value is released back to its pool only once the last clone is Reset.
// Plain assignment of a SharedHandle does not increment the refcount and
// must not be used to duplicate ownership: call Clone explicitly.
type SharedHandle[T any] struct {
	core *sharedCore[T]
}

// Get returns the shared value. Get on a handle that is not Ok returns the
// zero value of T.
func (h *SharedHandle[T]) Get() T {
	if h == nil || h.core == nil {
		var zero T
		return zero
	}
	return h.core.value
}

// Ok reports whether this handle still references a live value.
func (h *SharedHandle[T]) Ok() bool {
	return h != nil && h.core != nil
}

// Clone returns a new SharedHandle sharing ownership of the same value,
// incrementing the reference count. The returned handle must independently
// be Reset.
func (h *SharedHandle[T]) Clone() *SharedHandle[T] {
	if h == nil || h.core == nil {
		return &SharedHandle[T]{}
	}
	h.core.refs.Add(1)
	return &SharedHandle[T]{core: h.core}
}

// Reset drops this handle's share of ownership. When the last outstanding
// share is dropped, the value is released back to its pool. Reset is
// idempotent.
func (h *SharedHandle[T]) Reset() {
	if h == nil || h.core == nil {
		return
	}
	core := h.core
	h.core = nil
	if core.refs.Add(-1) == 0 {
		if core.release != nil {
			core.release(core.value)
		}
	}
}
