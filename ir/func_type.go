package ir

import "encoding/binary"

// FuncTypeEntity is a function signature: the ordered parameter types and
// the ordered result types. Zero or more results are legal; multi-result
// signatures are first class.
//
// Signatures are interned through Module.InternFuncType so that two
// structurally equal signatures share one FuncType index and comparing
// signatures downstream reduces to comparing indices. Entities handed out
// by a Module must not be mutated.
type FuncTypeEntity struct {
	Params  []Type
	Results []Type
}

// String implements fmt.Stringer.
func (t *FuncTypeEntity) String() (ret string) {
	for _, p := range t.Params {
		ret += p.String()
	}
	if len(t.Params) == 0 {
		ret += "null"
	}
	ret += "_"
	for _, r := range t.Results {
		ret += r.String()
	}
	if len(t.Results) == 0 {
		ret += "null"
	}
	return
}

// key returns a byte string identifying the signature structurally, used by
// the interning table. Each type is a single byte; the parameter count
// prefix keeps e.g. (i32,i64)->() distinct from (i32)->(i64).
func (t *FuncTypeEntity) key() string {
	b := make([]byte, 0, binary.MaxVarintLen32+len(t.Params)+len(t.Results))
	b = binary.AppendUvarint(b, uint64(len(t.Params)))
	for _, p := range t.Params {
		b = append(b, byte(p))
	}
	for _, r := range t.Results {
		b = append(b, byte(r))
	}
	return string(b)
}
