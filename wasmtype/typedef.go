package wasmtype

import "github.com/SethTisue/scala-wasm/names"

// StructType is a GC struct type: an ordered list of fields, optionally
// declaring a super type for Wasm's struct subtyping.
type StructType struct {
	Name      names.Name
	Fields    []FieldType
	SuperType *names.Name
}

// ArrayType is a GC array type: a single homogeneous element.
type ArrayType struct {
	Name    names.Name
	Element FieldType
}

// FunctionType is a Wasm function signature.
type FunctionType struct {
	Name    names.Name
	Params  []StorageType
	Results []StorageType
}

// Equal reports whether two function signatures are structurally equal,
// ignoring their Name — used by the interner (spec §4.C) to decide
// whether a signature has already been registered.
func (f FunctionType) Equal(o FunctionType) bool {
	if len(f.Params) != len(o.Params) || len(f.Results) != len(o.Results) {
		return false
	}
	for i := range f.Params {
		if !storageEqual(f.Params[i], o.Params[i]) {
			return false
		}
	}
	for i := range f.Results {
		if !storageEqual(f.Results[i], o.Results[i]) {
			return false
		}
	}
	return true
}

func storageEqual(a, b StorageType) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == StorageValue {
		return a.Value.Equal(b.Value)
	}
	return true
}

// Signature is the (params, results) pair the interner deduplicates on.
type Signature struct {
	Params  []StorageType
	Results []StorageType
}

// Equal reports structural equality of two signatures.
func (s Signature) Equal(o Signature) bool {
	return FunctionType{Params: s.Params, Results: s.Results}.
		Equal(FunctionType{Params: o.Params, Results: o.Results})
}
