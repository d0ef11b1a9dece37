package entity

import "iter"

// Map is sparse secondary storage associating auxiliary data with existing
// entities by their index. Passes use it to attach per-entity components
// (use counts, dominator info, annotations) without widening the entity
// itself, and the kind-tagged key type keeps components of different kinds
// apart at compile time.
//
// A Map is efficient when only some entities carry the component. Iteration
// order is unspecified, unlike Arena.All. The zero value is ready for use.
type Map[K Index, V any] struct {
	components map[K]V
}

// Insert sets the component for k and returns the previous component, if
// any.
func (m *Map[K, V]) Insert(k K, v V) (prev V, replaced bool) {
	if m.components == nil {
		m.components = make(map[K]V)
	}
	prev, replaced = m.components[k]
	m.components[k] = v
	return prev, replaced
}

// Get returns the component for k, if present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.components[k]
	return v, ok
}

// Contains reports whether k has a component.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.components[k]
	return ok
}

// Remove deletes the component for k and returns it, if it was present.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	v, ok := m.components[k]
	if ok {
		delete(m.components, k)
	}
	return v, ok
}

// Len returns the number of components in the map.
func (m *Map[K, V]) Len() int {
	return len(m.components)
}

// Clear removes all components, keeping the allocated capacity for reuse.
func (m *Map[K, V]) Clear() {
	clear(m.components)
}

// All iterates over (index, component) pairs in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.components {
			if !yield(k, v) {
				return
			}
		}
	}
}
