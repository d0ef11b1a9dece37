package ir

import "fmt"

// paramPos marks a value defined as a function parameter rather than by an
// instruction position.
const paramPos = -1

// ValueOrigin is the single defining point of an SSA value: either an
// instruction position within a block, or a function parameter of the entry
// block.
type ValueOrigin struct {
	block Block
	pos   int
}

// InstrOrigin returns the origin of a value defined by the instruction at
// position pos of block b. It panics on a negative position.
func InstrOrigin(b Block, pos int) ValueOrigin {
	if pos < 0 {
		panic(fmt.Sprintf("ir: negative instruction position %d", pos))
	}
	return ValueOrigin{block: b, pos: pos}
}

// ParamOrigin returns the origin of a value defined as a function parameter
// of entry block b.
func ParamOrigin(b Block) ValueOrigin {
	return ValueOrigin{block: b, pos: paramPos}
}

// Block returns the defining block.
func (o ValueOrigin) Block() Block { return o.block }

// IsParam reports whether the value is a function parameter.
func (o ValueOrigin) IsParam() bool { return o.pos == paramPos }

// InstrPos returns the defining instruction position within the block, or
// false for a parameter.
func (o ValueOrigin) InstrPos() (int, bool) {
	if o.pos == paramPos {
		return 0, false
	}
	return o.pos, true
}

// String implements fmt.Stringer.
func (o ValueOrigin) String() string {
	if o.IsParam() {
		return fmt.Sprintf("param@%s", o.block)
	}
	return fmt.Sprintf("%s[%d]", o.block, o.pos)
}

// ValueEntity is the metadata of an SSA value: its type and its single
// defining point. Both are fixed when the value is declared; SSA discipline
// means no later producer may change them.
type ValueEntity struct {
	typ    Type
	origin ValueOrigin
}

// Type returns the value's type.
func (v *ValueEntity) Type() Type { return v.typ }

// Origin returns the value's defining point.
func (v *ValueEntity) Origin() ValueOrigin { return v.origin }
