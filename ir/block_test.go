package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockEntity_sealing(t *testing.T) {
	var b BlockEntity
	require.False(t, b.Sealed())

	require.NoError(t, b.Seal())
	require.True(t, b.Sealed())

	// Sealing must happen exactly once: the deferred SSA resolution hooked
	// on it must not run twice.
	require.ErrorIs(t, b.Seal(), ErrSealedBlock)
	require.True(t, b.Sealed())
}

func TestBlockEntity_predecessorSet(t *testing.T) {
	var b BlockEntity

	require.NoError(t, b.AddPred(0))
	require.NoError(t, b.AddPred(2))
	require.Equal(t, []Block{0, 2}, b.Preds())

	// Duplicate predecessors are a no-op: the list is a set.
	require.NoError(t, b.AddPred(0))
	require.Equal(t, []Block{0, 2}, b.Preds())

	require.True(t, b.HasPred(0))
	require.True(t, b.HasPred(2))
	require.False(t, b.HasPred(1))
}

func TestBlockEntity_addPredAfterSeal(t *testing.T) {
	var b BlockEntity
	require.NoError(t, b.AddPred(1))
	require.NoError(t, b.Seal())

	err := b.AddPred(2)
	require.ErrorIs(t, err, ErrSealedBlock)
	require.Equal(t, []Block{1}, b.Preds())
}

func TestBlockEntity_appendInstrIgnoresSealState(t *testing.T) {
	var b BlockEntity
	b.AppendInstr(0)
	b.AppendInstr(1)

	require.NoError(t, b.Seal())
	b.AppendInstr(2)

	require.Equal(t, []Instr{0, 1, 2}, b.Instrs())
}
