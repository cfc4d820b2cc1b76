package wasmtype

import "github.com/SethTisue/scala-wasm/names"

// HeapKind discriminates HeapType = {TypeIndex(name), FuncIndex(name), Simple(...)}.
type HeapKind byte

const (
	HeapTypeIndex HeapKind = iota
	HeapFuncIndex
	HeapSimple
)

// SimpleHeap enumerates the abstract heap types (spec §3): any, extern,
// func, eq, struct, array, i31, none, nofunc, noextern.
type SimpleHeap byte

const (
	HeapAny SimpleHeap = iota
	HeapExtern
	HeapFunc
	HeapEq
	HeapStructRef
	HeapArrayRef
	HeapI31
	HeapNone
	HeapNoFunc
	HeapNoExtern
)

func (s SimpleHeap) String() string {
	switch s {
	case HeapAny:
		return "any"
	case HeapExtern:
		return "extern"
	case HeapFunc:
		return "func"
	case HeapEq:
		return "eq"
	case HeapStructRef:
		return "struct"
	case HeapArrayRef:
		return "array"
	case HeapI31:
		return "i31"
	case HeapNone:
		return "none"
	case HeapNoFunc:
		return "nofunc"
	case HeapNoExtern:
		return "noextern"
	default:
		return "unknown"
	}
}

// HeapType is either a reference to a declared type by Name (struct, array
// or function type), or one of Wasm's built-in abstract heap types.
type HeapType struct {
	Kind   HeapKind
	Name   names.Name // meaningful for HeapTypeIndex / HeapFuncIndex
	Simple SimpleHeap  // meaningful for HeapSimple
}

// SimpleHeapType builds a HeapType wrapping one of the abstract heap types.
func SimpleHeapType(s SimpleHeap) HeapType {
	return HeapType{Kind: HeapSimple, Simple: s}
}

func (h HeapType) String() string {
	switch h.Kind {
	case HeapSimple:
		return h.Simple.String()
	default:
		return h.Name.ID
	}
}

// Equal reports structural equality.
func (h HeapType) Equal(o HeapType) bool {
	if h.Kind != o.Kind {
		return false
	}
	if h.Kind == HeapSimple {
		return h.Simple == o.Simple
	}
	return h.Name == o.Name
}
