package cache

// Ref is a snapshot copy of one cached resource, returned from point
// accessors instead of a borrowed reference: the underlying map entry
// may be replaced by a concurrent Update call at any moment, so a Ref
// holds its own copy rather than aliasing cache-internal state.
type Ref[V any] struct {
	value V
	ok    bool
}

// Value returns the snapshotted resource and whether it was present.
func (r Ref[V]) Value() (V, bool) {
	return r.value, r.ok
}

// Ok reports whether the accessor found the resource.
func (r Ref[V]) Ok() bool {
	return r.ok
}

// Unwrap returns the snapshotted resource, or the zero value if the
// accessor found nothing.
func (r Ref[V]) Unwrap() V {
	return r.value
}
