package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_InsertGet(t *testing.T) {
	var m Map[blockIdx, string]
	require.Equal(t, 0, m.Len())

	_, replaced := m.Insert(3, "three")
	require.False(t, replaced)

	v, ok := m.Get(3)
	require.True(t, ok)
	require.Equal(t, "three", v)
	require.True(t, m.Contains(3))

	_, ok = m.Get(4)
	require.False(t, ok)
	require.False(t, m.Contains(4))

	prev, replaced := m.Insert(3, "tres")
	require.True(t, replaced)
	require.Equal(t, "three", prev)
	require.Equal(t, 1, m.Len())
}

func TestMap_Remove(t *testing.T) {
	var m Map[valueIdx, int]
	m.Insert(0, 100)
	m.Insert(1, 200)

	v, ok := m.Remove(0)
	require.True(t, ok)
	require.Equal(t, 100, v)
	require.Equal(t, 1, m.Len())

	_, ok = m.Remove(0)
	require.False(t, ok)
}

func TestMap_Clear(t *testing.T) {
	var m Map[valueIdx, int]
	for i := 0; i < 10; i++ {
		m.Insert(valueIdx(i), i)
	}
	require.Equal(t, 10, m.Len())

	m.Clear()
	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(0))
}

func TestMap_All(t *testing.T) {
	var m Map[blockIdx, int]
	expected := map[blockIdx]int{0: 10, 5: 50, 9: 90}
	for k, v := range expected {
		m.Insert(k, v)
	}

	seen := map[blockIdx]int{}
	for k, v := range m.All() {
		seen[k] = v
	}
	require.Equal(t, expected, seen)
}

func TestMap_keyedByArenaIndices(t *testing.T) {
	var arena Arena[blockIdx, testEntity]
	var m Map[blockIdx, int]

	for i := 0; i < 5; i++ {
		idx := arena.Push(testEntity{})
		m.Insert(idx, i*i)
	}

	for idx := range arena.All() {
		v, ok := m.Get(idx)
		require.True(t, ok)
		require.Equal(t, int(idx)*int(idx), v)
	}
}
