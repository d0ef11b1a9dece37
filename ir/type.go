package ir

import "fmt"

// IntType is a fixed-size integer type.
//
// Signedness is not part of the type: operations, not types, decide whether
// bits are interpreted signed or unsigned. The sub-32-bit widths exist so
// that compound widening operations, e.g. load-8-bits-and-zero-extend, can
// be expressed as separately typed steps.
type IntType byte

const (
	I8 IntType = iota
	I16
	I32
	I64
)

// BitWidth returns the bit width of the integer type.
func (t IntType) BitWidth() uint32 {
	switch t {
	case I8:
		return 8
	case I16:
		return 16
	case I32:
		return 32
	case I64:
		return 64
	}
	panic(fmt.Sprintf("ir: invalid IntType(%d)", byte(t)))
}

// Size returns the size of the integer type in bytes.
func (t IntType) Size() uint32 { return t.BitWidth() / 8 }

// Alignment returns the alignment exponent, N in 2^N bytes.
func (t IntType) Alignment() byte {
	switch t {
	case I8:
		return 0
	case I16:
		return 1
	case I32:
		return 2
	case I64:
		return 3
	}
	panic(fmt.Sprintf("ir: invalid IntType(%d)", byte(t)))
}

// Type returns the integer type as a Type.
func (t IntType) Type() Type {
	switch t {
	case I8:
		return TypeI8
	case I16:
		return TypeI16
	case I32:
		return TypeI32
	case I64:
		return TypeI64
	}
	panic(fmt.Sprintf("ir: invalid IntType(%d)", byte(t)))
}

// String implements fmt.Stringer.
func (t IntType) String() string {
	switch t {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	}
	panic(fmt.Sprintf("ir: invalid IntType(%d)", byte(t)))
}

// FloatType is an IEEE 754 floating point type.
type FloatType byte

const (
	F32 FloatType = iota
	F64
)

// BitWidth returns the bit width of the floating point type.
func (t FloatType) BitWidth() uint32 {
	switch t {
	case F32:
		return 32
	case F64:
		return 64
	}
	panic(fmt.Sprintf("ir: invalid FloatType(%d)", byte(t)))
}

// Size returns the size of the floating point type in bytes.
func (t FloatType) Size() uint32 { return t.BitWidth() / 8 }

// Alignment returns the alignment exponent, N in 2^N bytes.
func (t FloatType) Alignment() byte {
	switch t {
	case F32:
		return 2
	case F64:
		return 3
	}
	panic(fmt.Sprintf("ir: invalid FloatType(%d)", byte(t)))
}

// Type returns the floating point type as a Type.
func (t FloatType) Type() Type {
	switch t {
	case F32:
		return TypeF32
	case F64:
		return TypeF64
	}
	panic(fmt.Sprintf("ir: invalid FloatType(%d)", byte(t)))
}

// String implements fmt.Stringer.
func (t FloatType) String() string {
	switch t {
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	panic(fmt.Sprintf("ir: invalid FloatType(%d)", byte(t)))
}

// Type is any primitive type of the IR: a fixed-size integer type or a
// floating point type. Types are plain values; two types of the same kind
// and width are equal and compare in one instruction.
//
// The constant order below, integers by ascending width then floats by
// ascending width, is the canonical total order over types and is used as a
// canonicalization key during interning.
//
// The zero value TypeInvalid is never produced by any constructor in this
// package; queries on it panic so an uninitialized type is caught loudly.
type Type byte

const (
	TypeInvalid Type = iota
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeF32
	TypeF64
)

// IsInt reports whether t is a fixed-size integer type.
func (t Type) IsInt() bool { return t >= TypeI8 && t <= TypeI64 }

// IsFloat reports whether t is a floating point type.
func (t Type) IsFloat() bool { return t == TypeF32 || t == TypeF64 }

// AsInt returns the IntType of t, if t is an integer type.
func (t Type) AsInt() (IntType, bool) {
	switch t {
	case TypeI8:
		return I8, true
	case TypeI16:
		return I16, true
	case TypeI32:
		return I32, true
	case TypeI64:
		return I64, true
	}
	return 0, false
}

// AsFloat returns the FloatType of t, if t is a floating point type.
func (t Type) AsFloat() (FloatType, bool) {
	switch t {
	case TypeF32:
		return F32, true
	case TypeF64:
		return F64, true
	}
	return 0, false
}

// BitWidth returns the bit width of the type.
func (t Type) BitWidth() uint32 {
	switch t {
	case TypeI8:
		return 8
	case TypeI16:
		return 16
	case TypeI32, TypeF32:
		return 32
	case TypeI64, TypeF64:
		return 64
	}
	panic(fmt.Sprintf("ir: invalid Type(%d)", byte(t)))
}

// Size returns the size of the type in bytes.
func (t Type) Size() uint32 { return t.BitWidth() / 8 }

// Alignment returns the alignment exponent, N in 2^N bytes.
func (t Type) Alignment() byte {
	switch t {
	case TypeI8:
		return 0
	case TypeI16:
		return 1
	case TypeI32, TypeF32:
		return 2
	case TypeI64, TypeF64:
		return 3
	}
	panic(fmt.Sprintf("ir: invalid Type(%d)", byte(t)))
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeF32:
		return "f32"
	case TypeF64:
		return "f64"
	}
	panic(fmt.Sprintf("ir: invalid Type(%d)", byte(t)))
}
