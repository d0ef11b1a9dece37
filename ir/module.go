package ir

import (
	"fmt"
	"iter"
	"sync"

	"github.com/kestrelvm/kestrel/entity"
)

// Module owns the module-level arenas: interned function signatures, linear
// memories, tables and functions. Many functions reference these by index;
// a function never owns them.
//
// Declare and lookup methods take the module lock for the duration of the
// call only, so parallel workers building distinct functions may intern
// signatures and declare resources concurrently. Iteration methods do not
// lock: iterate only after construction of the respective arena has
// stopped, which is also the point from which its order is frozen.
type Module struct {
	mu        sync.Mutex
	funcTypes entity.Arena[FuncType, FuncTypeEntity]
	interned  map[string]FuncType
	mems      entity.Arena[Mem, LinearMemoryEntity]
	tables    entity.Arena[Table, TableEntity]
	funcs     entity.Arena[Func, Function]
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{interned: make(map[string]FuncType)}
}

// InternFuncType returns the canonical index of the signature
// (params, results), interning it on first sight. Interning structurally
// equal sequences returns the same index, so signature comparison
// downstream is index comparison. The parameter slices are copied; the
// stored entity is immutable.
func (m *Module) InternFuncType(params, results []Type) FuncType {
	sig := FuncTypeEntity{
		Params:  append([]Type(nil), params...),
		Results: append([]Type(nil), results...),
	}
	key := sig.key()

	m.mu.Lock()
	defer m.mu.Unlock()
	if idx, ok := m.interned[key]; ok {
		return idx
	}
	idx := m.funcTypes.Push(sig)
	m.interned[key] = idx
	return idx
}

// FuncType returns the signature interned at idx. The returned entity must
// not be mutated.
func (m *Module) FuncType(idx FuncType) *FuncTypeEntity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.funcTypes.Get(idx)
}

// NumFuncTypes returns the number of distinct signatures interned so far.
func (m *Module) NumFuncTypes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.funcTypes.Len()
}

// DeclareMemory validates and appends a linear memory descriptor, returning
// its index. A maximum smaller than the initial size fails with
// ErrInvalidLimits before anything enters the arena.
func (m *Module) DeclareMemory(initial uint32, max *uint32) (Mem, error) {
	ent, err := NewLinearMemory(initial, max)
	if err != nil {
		return 0, fmt.Errorf("declare: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mems.Push(ent), nil
}

// Memory returns the linear memory descriptor at idx.
func (m *Module) Memory(idx Mem) *LinearMemoryEntity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mems.Get(idx)
}

// NumMemories returns the number of linear memories declared so far.
func (m *Module) NumMemories() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mems.Len()
}

// DeclareTable validates and appends a table descriptor, returning its
// index. A maximum smaller than the initial element count fails with
// ErrInvalidLimits before anything enters the arena.
func (m *Module) DeclareTable(elem ElemType, initial uint32, max *uint32) (Table, error) {
	ent, err := NewTable(elem, initial, max)
	if err != nil {
		return 0, fmt.Errorf("declare: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables.Push(ent), nil
}

// Table returns the table descriptor at idx.
func (m *Module) Table(idx Table) *TableEntity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables.Get(idx)
}

// NumTables returns the number of tables declared so far.
func (m *Module) NumTables() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables.Len()
}

// NewFunction appends a function with the signature interned at typ and
// returns its index together with the function itself. The function's entry
// block and parameter values exist on return; see NewFunction (the free
// constructor) for the guarantees.
//
// The returned *Function may be handed to a dedicated worker: building one
// function is single-threaded, but different functions returned by separate
// NewFunction calls may be built in parallel.
func (m *Module) NewFunction(typ FuncType) (Func, *Function) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sig := m.funcTypes.Get(typ)
	idx := m.funcs.Push(*NewFunction(typ, sig))
	return idx, m.funcs.Get(idx)
}

// Function returns the function at idx.
func (m *Module) Function(idx Func) *Function {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.funcs.Get(idx)
}

// NumFunctions returns the number of functions created so far.
func (m *Module) NumFunctions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.funcs.Len()
}

// FuncTypes iterates over interned signatures in interning order.
func (m *Module) FuncTypes() iter.Seq2[FuncType, *FuncTypeEntity] { return m.funcTypes.All() }

// Memories iterates over linear memories in declaration order.
func (m *Module) Memories() iter.Seq2[Mem, *LinearMemoryEntity] { return m.mems.All() }

// Tables iterates over tables in declaration order.
func (m *Module) Tables() iter.Seq2[Table, *TableEntity] { return m.tables.All() }

// Functions iterates over functions in creation order.
func (m *Module) Functions() iter.Seq2[Func, *Function] { return m.funcs.All() }
