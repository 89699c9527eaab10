// Package store holds the pieces shared by the client state stores: an
// insertion-ordered collection keyed by id, a subscriber list, and request
// status bookkeeping.
package store

// Ordered is an insertion-ordered collection of values identified by a key.
// It is immutable: every mutation returns a new Ordered and leaves the
// receiver untouched, so a snapshot handed to a subscriber never changes.
type Ordered[K comparable, V any] struct {
	key   func(V) K
	items []V
}

// NewOrdered builds an Ordered from items. Later duplicates replace earlier
// ones in place.
func NewOrdered[K comparable, V any](key func(V) K, items []V) Ordered[K, V] {
	o := Ordered[K, V]{key: key, items: make([]V, 0, len(items))}
	for _, v := range items {
		if i := o.index(key(v)); i >= 0 {
			o.items[i] = v
			continue
		}
		o.items = append(o.items, v)
	}
	return o
}

func (o Ordered[K, V]) Len() int {
	return len(o.items)
}

func (o Ordered[K, V]) index(k K) int {
	for i, v := range o.items {
		if o.key(v) == k {
			return i
		}
	}
	return -1
}

// Get returns the value stored under k.
func (o Ordered[K, V]) Get(k K) (V, bool) {
	if i := o.index(k); i >= 0 {
		return o.items[i], true
	}
	var zero V
	return zero, false
}

// Find returns the first value matching fn.
func (o Ordered[K, V]) Find(fn func(V) bool) (V, bool) {
	for _, v := range o.items {
		if fn(v) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Upsert replaces the value with the same key in place, or appends v.
func (o Ordered[K, V]) Upsert(v V) (Ordered[K, V], bool) {
	items := make([]V, len(o.items), len(o.items)+1)
	copy(items, o.items)
	if i := o.index(o.key(v)); i >= 0 {
		items[i] = v
		return Ordered[K, V]{key: o.key, items: items}, true
	}
	return Ordered[K, V]{key: o.key, items: append(items, v)}, false
}

// Replace puts v in the slot of the value stored under k. It reports false
// and leaves o unchanged when k is absent.
func (o Ordered[K, V]) Replace(k K, v V) (Ordered[K, V], bool) {
	i := o.index(k)
	if i < 0 {
		return o, false
	}
	items := make([]V, len(o.items))
	copy(items, o.items)
	items[i] = v
	return Ordered[K, V]{key: o.key, items: items}, true
}

// Remove drops the value stored under k.
func (o Ordered[K, V]) Remove(k K) (Ordered[K, V], bool) {
	i := o.index(k)
	if i < 0 {
		return o, false
	}
	items := make([]V, 0, len(o.items)-1)
	items = append(items, o.items[:i]...)
	items = append(items, o.items[i+1:]...)
	return Ordered[K, V]{key: o.key, items: items}, true
}

// Values returns a copy of the values in order.
func (o Ordered[K, V]) Values() []V {
	out := make([]V, len(o.items))
	copy(out, o.items)
	return out
}
