// Package wasmtype models the Wasm core + GC type system this backend
// targets: value types, storage types, heap types, the three flavors of
// type definition (struct, array, function), and the open sum of
// instructions with their immediates (spec §3).
package wasmtype

import "github.com/SethTisue/scala-wasm/names"

// ValueKind discriminates the ValueType sum: numeric types, and the two
// reference-type shapes (nullable and non-nullable), each carrying a
// HeapType.
type ValueKind byte

const (
	KindI32 ValueKind = iota
	KindI64
	KindF32
	KindF64
	KindRef     // (ref ht) - non-nullable
	KindRefNull // (ref null ht) - nullable
)

// ValueType = {i32, i64, f32, f64, ref(heapType), refNull(heapType)}.
// anyref is just RefNull(Simple(any)) and is constructed via AnyRef().
type ValueType struct {
	Kind ValueKind
	Heap HeapType // meaningful only for KindRef / KindRefNull
}

func I32() ValueType { return ValueType{Kind: KindI32} }
func I64() ValueType { return ValueType{Kind: KindI64} }
func F32() ValueType { return ValueType{Kind: KindF32} }
func F64() ValueType { return ValueType{Kind: KindF64} }

// Ref builds a non-nullable reference type to ht.
func Ref(ht HeapType) ValueType { return ValueType{Kind: KindRef, Heap: ht} }

// RefNull builds a nullable reference type to ht.
func RefNull(ht HeapType) ValueType { return ValueType{Kind: KindRefNull, Heap: ht} }

// AnyRef is the commonly used `ref null any` shorthand, e.g. for the boxed
// JS-interop values and the string-constant globals of §4.C.
func AnyRef() ValueType { return RefNull(SimpleHeapType(HeapAny)) }

// ByTypeName builds a heap type that refers to the struct/array/function
// Wasm type registered under name; Ref or RefNull turns it into a
// non-nullable or nullable reference.
func ByTypeName(name names.Name) HeapType {
	return HeapType{Kind: HeapTypeIndex, Name: name}
}

func (v ValueType) String() string {
	switch v.Kind {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindRef:
		return "(ref " + v.Heap.String() + ")"
	case KindRefNull:
		return "(ref null " + v.Heap.String() + ")"
	default:
		return "unknown"
	}
}

// Equal reports structural equality, used by the function-signature
// interner (spec §4.C) to decide whether two signatures coincide.
func (v ValueType) Equal(o ValueType) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == KindRef || v.Kind == KindRefNull {
		return v.Heap.Equal(o.Heap)
	}
	return true
}
