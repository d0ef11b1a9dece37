// Package entity provides the append-only arenas and kind-tagged indices
// that give IR entities their identity.
//
// An arena hands out dense uint32 indices in allocation order and never
// reuses or invalidates one. The index type is part of the arena's type, so
// an index minted for one entity kind cannot address an arena of another
// kind: that mistake fails to compile instead of corrupting a lookup.
package entity

import (
	"fmt"
	"iter"

	"fortio.org/safecast"
)

// Index constrains the kind-tagged index types addressing an Arena. Each
// entity kind defines its own distinct index type, e.g. `type Block uint32`,
// so indices of different kinds never mix.
type Index interface {
	~uint32
}

// Arena is an append-only store of E entities addressed by K indices.
//
// Indices are assigned densely starting at zero in Push order, which is also
// the iteration order of All. Entities are never removed, so an index stays
// valid for the arena's whole lifetime and downstream passes can cache
// per-entity data keyed by it (see Map).
//
// The zero value is an empty arena ready for use. An Arena is not safe for
// concurrent mutation.
type Arena[K Index, E any] struct {
	// Each slot is allocated separately so pointers returned by Get stay
	// valid when the slice grows.
	slots []*E
}

// Push appends e to the arena and returns its freshly minted index.
// Returned indices are exactly 0, 1, 2, ... in call order and are never
// reissued.
func (a *Arena[K, E]) Push(e E) K {
	raw, err := safecast.Conv[uint32](len(a.slots))
	if err != nil {
		panic(fmt.Sprintf("entity: arena index space exhausted: %v", err))
	}
	a.slots = append(a.slots, &e)
	return K(raw)
}

// Get returns the entity stored at k. The returned pointer stays valid
// across later Push calls.
//
// Get panics if k is out of bounds. Arenas are the only source of indices,
// so an out-of-bounds index is always a bug in the caller, never bad input.
func (a *Arena[K, E]) Get(k K) *E {
	if !a.Contains(k) {
		panic(fmt.Sprintf("entity: index %d out of bounds for arena of length %d", uint32(k), len(a.slots)))
	}
	return a.slots[k]
}

// Contains reports whether k addresses an entity in this arena.
func (a *Arena[K, E]) Contains(k K) bool {
	return uint64(k) < uint64(len(a.slots))
}

// Len returns the number of entities pushed so far.
func (a *Arena[K, E]) Len() int {
	return len(a.slots)
}

// All iterates over (index, entity) pairs in index order, which is creation
// order. This is the canonical deterministic iteration order that
// reproducible compilation output relies on.
func (a *Arena[K, E]) All() iter.Seq2[K, *E] {
	return func(yield func(K, *E) bool) {
		for i, e := range a.slots {
			if !yield(K(uint32(i)), e) {
				return
			}
		}
	}
}
