// Package ir defines the entity model of the Kestrel IR: the primitive type
// and constant vocabulary, and the arena-backed entities (function
// signatures, linear memories, tables, functions, basic blocks and SSA
// values) that every later compilation stage addresses by index.
//
// Identity is two-tiered. FuncType, Mem, Table and Func indices are scoped
// to a Module and shared read-only by many functions. Block and Value
// indices are scoped to their owning Function: bb0 of two different
// functions names two unrelated blocks. Index types for different kinds are
// distinct Go types, so mixing them up fails to compile.
//
// This package contains no instruction set, no serialization and no
// execution semantics; decoders, SSA builders, verifiers, optimizers and
// code generators are collaborators that consume and produce these entities
// through the construction APIs below.
package ir

import "fmt"

// Func is the module-scoped index of a function.
type Func uint32

// String implements fmt.Stringer.
func (f Func) String() string { return fmt.Sprintf("func%d", uint32(f)) }

// FuncType is the module-scoped index of an interned function signature.
// Because signatures are interned, comparing two FuncType indices for
// equality is the same as comparing the signatures structurally.
type FuncType uint32

// String implements fmt.Stringer.
func (t FuncType) String() string { return fmt.Sprintf("func_type(%d)", uint32(t)) }

// Mem is the module-scoped index of a linear memory.
type Mem uint32

// String implements fmt.Stringer.
func (m Mem) String() string { return fmt.Sprintf("mem(%d)", uint32(m)) }

// Table is the module-scoped index of a table.
type Table uint32

// String implements fmt.Stringer.
func (t Table) String() string { return fmt.Sprintf("table(%d)", uint32(t)) }

// Block is the function-scoped index of a basic block.
type Block uint32

// String implements fmt.Stringer.
func (b Block) String() string { return fmt.Sprintf("bb%d", uint32(b)) }

// Value is the function-scoped index of an SSA value.
type Value uint32

// String implements fmt.Stringer.
func (v Value) String() string { return fmt.Sprintf("v%d", uint32(v)) }

// Instr is an opaque, function-scoped reference to an instruction. The
// instruction set and its storage live outside this package; blocks only
// record the ordered list of references.
type Instr uint32

// String implements fmt.Stringer.
func (i Instr) String() string { return fmt.Sprintf("instr(%d)", uint32(i)) }
