package ir

import (
	"fmt"
	"math"
)

// Const is a typed constant value: the bit pattern of an integer or
// floating point literal together with its Type.
//
// Const is comparable and usable as a map key. Two constants are equal
// exactly when their type and bit pattern are identical. For floats this is
// deliberately stricter than IEEE 754 equality: NaNs with different
// payloads are different constants, a NaN equals itself, and 0.0 and -0.0
// are distinct. Equality and hashing are therefore total and deterministic,
// and a constant round-trips through the IR without its bits ever changing.
type Const struct {
	typ  Type
	bits uint64
}

// NewIntConst returns a constant of integer type t holding v.
//
// The range policy is reject, not truncate: v must fit t's signed range, or
// be non-negative and fit t's unsigned range; anything else fails with
// ErrConstOutOfRange. Whether the stored bits are later read signed or
// unsigned is up to the consuming operation. The stored bit pattern is the
// two's-complement encoding of v at t's width.
func NewIntConst(t IntType, v int64) (Const, error) {
	w := t.BitWidth()
	if w < 64 {
		min := -(int64(1) << (w - 1))
		max := int64(widthMask(w)) // unsigned maximum
		if v < min || v > max {
			return Const{}, fmt.Errorf("%w: %d does not fit %s", ErrConstOutOfRange, v, t)
		}
	}
	return Const{typ: t.Type(), bits: uint64(v) & widthMask(w)}, nil
}

// NewUintConst is NewIntConst for values beyond the int64 range: v must fit
// t's unsigned range.
func NewUintConst(t IntType, v uint64) (Const, error) {
	w := t.BitWidth()
	if v > widthMask(w) {
		return Const{}, fmt.Errorf("%w: %d does not fit %s", ErrConstOutOfRange, v, t)
	}
	return Const{typ: t.Type(), bits: v}, nil
}

// Float32Const returns an f32 constant holding the exact bit pattern of v,
// NaN payloads included.
func Float32Const(v float32) Const {
	return Float32ConstFromBits(math.Float32bits(v))
}

// Float32ConstFromBits returns an f32 constant from a raw IEEE 754 bit
// pattern. No bit pattern is rejected or canonicalized.
func Float32ConstFromBits(bits uint32) Const {
	return Const{typ: TypeF32, bits: uint64(bits)}
}

// Float64Const returns an f64 constant holding the exact bit pattern of v,
// NaN payloads included.
func Float64Const(v float64) Const {
	return Float64ConstFromBits(math.Float64bits(v))
}

// Float64ConstFromBits returns an f64 constant from a raw IEEE 754 bit
// pattern. No bit pattern is rejected or canonicalized.
func Float64ConstFromBits(bits uint64) Const {
	return Const{typ: TypeF64, bits: bits}
}

// Type returns the type of the constant.
func (c Const) Type() Type { return c.typ }

// Bits returns the raw bit pattern, zero-extended to 64 bits.
func (c Const) Bits() uint64 { return c.bits }

// Int64 returns the integer value sign-extended from the constant's width.
// It panics if c is not an integer constant.
func (c Const) Int64() int64 {
	t, ok := c.typ.AsInt()
	if !ok {
		panic(fmt.Sprintf("ir: Int64 called on %s constant", c.typ))
	}
	shift := 64 - t.BitWidth()
	return int64(c.bits<<shift) >> shift
}

// Uint64 returns the integer value zero-extended from the constant's width.
// It panics if c is not an integer constant.
func (c Const) Uint64() uint64 {
	if !c.typ.IsInt() {
		panic(fmt.Sprintf("ir: Uint64 called on %s constant", c.typ))
	}
	return c.bits
}

// Float32 returns the floating point value. It panics unless c is an f32
// constant.
func (c Const) Float32() float32 {
	if c.typ != TypeF32 {
		panic(fmt.Sprintf("ir: Float32 called on %s constant", c.typ))
	}
	return math.Float32frombits(uint32(c.bits))
}

// Float64 returns the floating point value. It panics unless c is an f64
// constant.
func (c Const) Float64() float64 {
	if c.typ != TypeF64 {
		panic(fmt.Sprintf("ir: Float64 called on %s constant", c.typ))
	}
	return math.Float64frombits(c.bits)
}

// String implements fmt.Stringer.
func (c Const) String() string {
	switch {
	case c.typ.IsInt():
		return fmt.Sprintf("%s(%d)", c.typ, c.Int64())
	case c.typ == TypeF32:
		return fmt.Sprintf("f32(%g)", c.Float32())
	case c.typ == TypeF64:
		return fmt.Sprintf("f64(%g)", c.Float64())
	}
	panic(fmt.Sprintf("ir: invalid Type(%d)", byte(c.typ)))
}

// widthMask returns the all-ones bit pattern of the given width, which is
// also the unsigned maximum at that width.
func widthMask(w uint32) uint64 {
	if w == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}
