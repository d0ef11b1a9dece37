package ir

import "fmt"

// LinearMemoryEntity describes a linear memory resource: its initial size
// and optional maximum, in pages. It carries no behavior beyond validated
// storage; access semantics belong to the execution engine.
type LinearMemoryEntity struct {
	Initial uint32
	Max     *uint32 // nil means no maximum
}

// NewLinearMemory validates and returns a linear memory descriptor. A
// maximum smaller than the initial size fails with ErrInvalidLimits.
func NewLinearMemory(initial uint32, max *uint32) (LinearMemoryEntity, error) {
	if err := checkLimits(initial, max); err != nil {
		return LinearMemoryEntity{}, fmt.Errorf("memory: %w", err)
	}
	return LinearMemoryEntity{Initial: initial, Max: max}, nil
}

// ElemType is the element type tag of a table.
type ElemType byte

// ElemTypeFunc is the function-reference element type, the only one
// currently defined. The value matches the funcref binary encoding.
const ElemTypeFunc ElemType = 0x70

// String implements fmt.Stringer.
func (e ElemType) String() string {
	if e == ElemTypeFunc {
		return "funcref"
	}
	return "unknown"
}

// TableEntity describes a table resource: its element type, initial element
// count and optional maximum.
type TableEntity struct {
	ElemType ElemType
	Initial  uint32
	Max      *uint32 // nil means no maximum
}

// NewTable validates and returns a table descriptor. A maximum smaller than
// the initial element count fails with ErrInvalidLimits.
func NewTable(elem ElemType, initial uint32, max *uint32) (TableEntity, error) {
	if err := checkLimits(initial, max); err != nil {
		return TableEntity{}, fmt.Errorf("table: %w", err)
	}
	return TableEntity{ElemType: elem, Initial: initial, Max: max}, nil
}

func checkLimits(initial uint32, max *uint32) error {
	if max != nil && *max < initial {
		return fmt.Errorf("%w: initial %d, maximum %d", ErrInvalidLimits, initial, *max)
	}
	return nil
}
