package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType_queries(t *testing.T) {
	tests := []struct {
		typ       Type
		bitWidth  uint32
		size      uint32
		alignment byte
		str       string
		isInt     bool
	}{
		{typ: TypeI8, bitWidth: 8, size: 1, alignment: 0, str: "i8", isInt: true},
		{typ: TypeI16, bitWidth: 16, size: 2, alignment: 1, str: "i16", isInt: true},
		{typ: TypeI32, bitWidth: 32, size: 4, alignment: 2, str: "i32", isInt: true},
		{typ: TypeI64, bitWidth: 64, size: 8, alignment: 3, str: "i64", isInt: true},
		{typ: TypeF32, bitWidth: 32, size: 4, alignment: 2, str: "f32"},
		{typ: TypeF64, bitWidth: 64, size: 8, alignment: 3, str: "f64"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.str, func(t *testing.T) {
			require.Equal(t, tc.bitWidth, tc.typ.BitWidth())
			require.Equal(t, tc.size, tc.typ.Size())
			require.Equal(t, tc.alignment, tc.typ.Alignment())
			require.Equal(t, tc.str, tc.typ.String())
			require.Equal(t, tc.isInt, tc.typ.IsInt())
			require.Equal(t, !tc.isInt, tc.typ.IsFloat())
		})
	}
}

func TestIntType_roundTrip(t *testing.T) {
	for _, it := range []IntType{I8, I16, I32, I64} {
		typ := it.Type()
		require.True(t, typ.IsInt())

		got, ok := typ.AsInt()
		require.True(t, ok)
		require.Equal(t, it, got)

		_, ok = typ.AsFloat()
		require.False(t, ok)

		require.Equal(t, it.BitWidth(), typ.BitWidth())
		require.Equal(t, it.Size(), typ.Size())
		require.Equal(t, it.Alignment(), typ.Alignment())
		require.Equal(t, it.String(), typ.String())
	}
}

func TestFloatType_roundTrip(t *testing.T) {
	for _, ft := range []FloatType{F32, F64} {
		typ := ft.Type()
		require.True(t, typ.IsFloat())

		got, ok := typ.AsFloat()
		require.True(t, ok)
		require.Equal(t, ft, got)

		_, ok = typ.AsInt()
		require.False(t, ok)

		require.Equal(t, ft.BitWidth(), typ.BitWidth())
		require.Equal(t, ft.Size(), typ.Size())
		require.Equal(t, ft.Alignment(), typ.Alignment())
		require.Equal(t, ft.String(), typ.String())
	}
}

// The constant order of Type is the canonical total order: integers by
// ascending width, then floats by ascending width.
func TestType_canonicalOrder(t *testing.T) {
	ordered := []Type{TypeI8, TypeI16, TypeI32, TypeI64, TypeF32, TypeF64}
	for i := 1; i < len(ordered); i++ {
		require.Less(t, ordered[i-1], ordered[i])
	}
}

func TestType_invalidPanics(t *testing.T) {
	require.Panics(t, func() { TypeInvalid.BitWidth() })
	require.Panics(t, func() { TypeInvalid.Alignment() })
	require.Panics(t, func() { _ = TypeInvalid.String() })
	require.False(t, TypeInvalid.IsInt())
	require.False(t, TypeInvalid.IsFloat())
}
