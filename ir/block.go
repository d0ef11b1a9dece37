package ir

import "fmt"

// BlockEntity is a basic block under construction: its ordered instruction
// references, its predecessor set and its seal state.
//
// A block starts unsealed, meaning its predecessor set may still grow. Seal
// declares the set final. The transition is one-way and must happen exactly
// once, because sealing is the point where the SSA builder resolves any
// placeholder definitions that waited on the full predecessor set.
// Instructions may be appended regardless of seal state.
//
// Blocks are never deleted: a block made unreachable by an optimizer stays
// addressable by its index and is simply excluded from reachable-block
// traversals.
type BlockEntity struct {
	instrs []Instr
	preds  []Block
	sealed bool
}

// AppendInstr appends an instruction reference to the block's ordered list.
func (b *BlockEntity) AppendInstr(instr Instr) {
	b.instrs = append(b.instrs, instr)
}

// Instrs returns the instruction references in append order. The returned
// slice is the block's own storage and must not be modified.
func (b *BlockEntity) Instrs() []Instr { return b.instrs }

// AddPred records pred as a predecessor of the block. The predecessor list
// is an ordered set: adding the same predecessor again is a no-op. Once the
// block is sealed, AddPred fails with ErrSealedBlock.
func (b *BlockEntity) AddPred(pred Block) error {
	if b.sealed {
		return fmt.Errorf("add predecessor %s: %w", pred, ErrSealedBlock)
	}
	if b.HasPred(pred) {
		return nil
	}
	b.preds = append(b.preds, pred)
	return nil
}

// HasPred reports whether pred is recorded as a predecessor.
func (b *BlockEntity) HasPred(pred Block) bool {
	for _, p := range b.preds {
		if p == pred {
			return true
		}
	}
	return false
}

// Preds returns the predecessors in the order they were added. The returned
// slice is the block's own storage and must not be modified.
func (b *BlockEntity) Preds() []Block { return b.preds }

// Sealed reports whether the predecessor set is final.
func (b *BlockEntity) Sealed() bool { return b.sealed }

// Seal marks the predecessor set final. Sealing an already sealed block
// fails with ErrSealedBlock, since the deferred work hooked on sealing must
// run exactly once.
func (b *BlockEntity) Seal() error {
	if b.sealed {
		return ErrSealedBlock
	}
	b.sealed = true
	return nil
}
