package ir

import (
	"fmt"
	"iter"

	"github.com/kestrelvm/kestrel/entity"
)

// Function aggregates a signature reference with the function's own block
// and value arenas. Block and Value indices are scoped to their Function;
// the same numeric index in another function names an unrelated entity.
//
// Construction of one Function is single-threaded: sealing and value
// declaration have a temporal order that concurrent mutation would break.
// Distinct Functions may be built concurrently.
type Function struct {
	typ       FuncType
	blocks    entity.Arena[Block, BlockEntity]
	values    entity.Arena[Value, ValueEntity]
	entry     Block
	params    []Value
	nextInstr Instr
}

// NewFunction returns a function with the given interned signature. The
// entry block is created first, so it is always index 0, and is sealed
// immediately since it has no predecessors by construction. One value per
// signature parameter is declared with its origin at the entry block, in
// signature order.
//
// sig must be the entity interned under typ; Module.NewFunction passes it
// through.
func NewFunction(typ FuncType, sig *FuncTypeEntity) *Function {
	f := &Function{typ: typ}
	f.entry = f.blocks.Push(BlockEntity{sealed: true})
	f.params = make([]Value, 0, len(sig.Params))
	for _, pt := range sig.Params {
		f.params = append(f.params, f.values.Push(ValueEntity{typ: pt, origin: ParamOrigin(f.entry)}))
	}
	return f
}

// Type returns the interned signature index of the function.
func (f *Function) Type() FuncType { return f.typ }

// Entry returns the entry block, always index 0.
func (f *Function) Entry() Block { return f.entry }

// Params returns the values declared for the function's parameters, in
// signature order. The returned slice must not be modified.
func (f *Function) Params() []Value { return f.params }

// NewBlock allocates a new unsealed block with no predecessors.
func (f *Function) NewBlock() Block {
	return f.blocks.Push(BlockEntity{})
}

// Block returns the block at b. It panics if b was not allocated by this
// function.
func (f *Function) Block(b Block) *BlockEntity { return f.blocks.Get(b) }

// NumBlocks returns the number of blocks allocated so far.
func (f *Function) NumBlocks() int { return f.blocks.Len() }

// SealBlock marks b's predecessor set final. Sealing an already sealed
// block fails with ErrSealedBlock.
func (f *Function) SealBlock(b Block) error {
	if err := f.blocks.Get(b).Seal(); err != nil {
		return fmt.Errorf("seal %s: %w", b, err)
	}
	return nil
}

// AddPred records pred as a predecessor of b. Both blocks must belong to
// this function. Adding a predecessor twice is a no-op; adding to a sealed
// block fails with ErrSealedBlock.
func (f *Function) AddPred(b, pred Block) error {
	f.blocks.Get(pred) // assert pred is in scope before touching b
	return f.blocks.Get(b).AddPred(pred)
}

// AppendInstr appends the instruction reference instr to block b. Appending
// is legal regardless of b's seal state.
func (f *Function) AppendInstr(b Block, instr Instr) {
	f.blocks.Get(b).AppendInstr(instr)
}

// AllocInstr reserves the next opaque instruction reference. The
// instruction data itself lives with the external instruction store; this
// core only tracks the ordered references per block.
func (f *Function) AllocInstr() Instr {
	i := f.nextInstr
	f.nextInstr++
	return i
}

// DeclareValue allocates a new SSA value of type t defined at origin. The
// type and origin are permanent: there is no update operation for an
// existing value. The origin's block must belong to this function.
func (f *Function) DeclareValue(t Type, origin ValueOrigin) Value {
	f.blocks.Get(origin.Block()) // assert the defining block is in scope
	return f.values.Push(ValueEntity{typ: t, origin: origin})
}

// Value returns the value entity at v. It panics if v was not declared by
// this function.
func (f *Function) Value(v Value) *ValueEntity { return f.values.Get(v) }

// NumValues returns the number of values declared so far.
func (f *Function) NumValues() int { return f.values.Len() }

// Blocks iterates over the function's blocks in allocation order.
func (f *Function) Blocks() iter.Seq2[Block, *BlockEntity] { return f.blocks.All() }

// Values iterates over the function's values in declaration order.
func (f *Function) Values() iter.Seq2[Value, *ValueEntity] { return f.values.All() }
