package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type blockIdx uint32

type valueIdx uint32

type testEntity struct {
	name string
}

func TestArena_PushGet(t *testing.T) {
	var arena Arena[blockIdx, testEntity]

	entities := []testEntity{{"a"}, {"b"}, {"c"}, {"d"}}
	for i, e := range entities {
		idx := arena.Push(e)
		require.Equal(t, blockIdx(i), idx)
	}

	require.Equal(t, len(entities), arena.Len())
	for i, e := range entities {
		require.Equal(t, e, *arena.Get(blockIdx(i)))
	}
}

func TestArena_Get_outOfBounds(t *testing.T) {
	var arena Arena[blockIdx, testEntity]
	require.Panics(t, func() { arena.Get(0) })

	arena.Push(testEntity{"a"})
	require.NotPanics(t, func() { arena.Get(0) })
	require.Panics(t, func() { arena.Get(1) })
}

func TestArena_Contains(t *testing.T) {
	var arena Arena[blockIdx, testEntity]
	require.False(t, arena.Contains(0))

	idx := arena.Push(testEntity{"a"})
	require.True(t, arena.Contains(idx))
	require.False(t, arena.Contains(idx+1))
}

func TestArena_All_order(t *testing.T) {
	var arena Arena[valueIdx, int]
	const n = 100
	for i := 0; i < n; i++ {
		arena.Push(i * 10)
	}

	var next valueIdx
	for idx, e := range arena.All() {
		require.Equal(t, next, idx)
		require.Equal(t, int(next)*10, *e)
		next++
	}
	require.Equal(t, valueIdx(n), next)
}

func TestArena_All_stopsWhenYieldReturnsFalse(t *testing.T) {
	var arena Arena[valueIdx, int]
	for i := 0; i < 10; i++ {
		arena.Push(i)
	}

	var seen int
	for range arena.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

func TestArena_Get_pointerStableAcrossPush(t *testing.T) {
	var arena Arena[blockIdx, testEntity]
	idx := arena.Push(testEntity{"first"})
	first := arena.Get(idx)

	// Grow the arena enough to force the index slice to reallocate.
	for i := 0; i < 1000; i++ {
		arena.Push(testEntity{"filler"})
	}

	first.name = "renamed"
	require.Equal(t, "renamed", arena.Get(idx).name)
	require.Same(t, first, arena.Get(idx))
}
