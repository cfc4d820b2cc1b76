// Package names is the stable-name registry (spec component A). Every
// Wasm declaration this backend emits — types, functions, globals, locals,
// fields, labels — is addressed by a value-typed, hashable Name rather
// than by its eventual numeric index; the registry is what turns insertion
// order into that index.
package names

// Space identifies one of Wasm's index spaces. Index spaces are disjoint:
// a Name in SpaceFunc and a Name in SpaceGlobal with the same ID never
// collide.
type Space byte

const (
	SpaceType Space = iota
	SpaceFunc
	SpaceGlobal
	SpaceLocal
	SpaceField
	SpaceLabel
)

func (s Space) String() string {
	switch s {
	case SpaceType:
		return "type"
	case SpaceFunc:
		return "func"
	case SpaceGlobal:
		return "global"
	case SpaceLocal:
		return "local"
	case SpaceField:
		return "field"
	case SpaceLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Name is a stable, value-typed, hashable reference to a declaration.
// Two Names are equal iff their Space and ID are equal.
type Name struct {
	Space Space
	ID    string
}

// Registry assigns dense, insertion-ordered indices to Names within their
// space. Within SpaceFunc, callers are responsible for inserting imported
// functions before defined ones (Wasm's func index space is imports-first);
// the registry just records insertion order faithfully.
type Registry struct {
	indices map[Name]int
	order   map[Space][]Name
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		indices: make(map[Name]int),
		order:   make(map[Space][]Name),
	}
}

// Insert assigns the next dense index to n if it has not been seen before
// in its space, and returns that index. Re-inserting an already-known name
// is a no-op that returns its existing index.
func (r *Registry) Insert(n Name) int {
	if idx, ok := r.indices[n]; ok {
		return idx
	}
	idx := len(r.order[n.Space])
	r.order[n.Space] = append(r.order[n.Space], n)
	r.indices[n] = idx
	return idx
}

// IndexOf looks up the index of n within its space.
func (r *Registry) IndexOf(n Name) (int, bool) {
	idx, ok := r.indices[n]
	return idx, ok
}

// Count returns the number of distinct names registered in space.
func (r *Registry) Count(space Space) int {
	return len(r.order[space])
}

// InOrder returns the names registered in space, in insertion order.
func (r *Registry) InOrder(space Space) []Name {
	return append([]Name(nil), r.order[space]...)
}

// LocalFrame is the per-function local index space: parameters occupy the
// low indices in declaration order, followed by non-parameter locals in
// declaration order (spec §4.A, §4.F invariant 4).
type LocalFrame struct {
	names    []string
	index    map[string]int
	nParams  int
}

// NewLocalFrame creates an empty local frame.
func NewLocalFrame() *LocalFrame {
	return &LocalFrame{index: make(map[string]int)}
}

// AddParam declares the next parameter and returns its local index.
// All AddParam calls for a frame must precede its AddLocal calls.
func (f *LocalFrame) AddParam(id string) int {
	idx := len(f.names)
	f.names = append(f.names, id)
	f.index[id] = idx
	f.nParams++
	return idx
}

// AddLocal declares the next non-parameter local and returns its index.
func (f *LocalFrame) AddLocal(id string) int {
	idx := len(f.names)
	f.names = append(f.names, id)
	f.index[id] = idx
	return idx
}

// IndexOf looks up a previously declared parameter or local by id.
func (f *LocalFrame) IndexOf(id string) (int, bool) {
	idx, ok := f.index[id]
	return idx, ok
}

// NumParams returns the number of declared parameters.
func (f *LocalFrame) NumParams() int {
	return f.nParams
}

// NumLocals returns the number of declared non-parameter locals.
func (f *LocalFrame) NumLocals() int {
	return len(f.names) - f.nParams
}

// FieldFrame is the per-struct field index space, assigned in declared order.
type FieldFrame struct {
	index map[string]int
	names []string
}

// NewFieldFrame creates an empty field frame.
func NewFieldFrame() *FieldFrame {
	return &FieldFrame{index: make(map[string]int)}
}

// Add declares the next field and returns its index.
func (f *FieldFrame) Add(id string) int {
	idx := len(f.names)
	f.names = append(f.names, id)
	f.index[id] = idx
	return idx
}

// IndexOf looks up a previously declared field by id.
func (f *FieldFrame) IndexOf(id string) (int, bool) {
	idx, ok := f.index[id]
	return idx, ok
}
