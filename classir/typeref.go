package classir

import (
	"strings"

	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
)

// TypeRefKind discriminates the closed TypeRef sum (spec §3, §4.D):
// primitives, the well-known java.lang.Object-style top type, a named
// class, and an array of some element type.
type TypeRefKind byte

const (
	RefBoolean TypeRefKind = iota
	RefChar
	RefByte
	RefShort
	RefInt
	RefLong
	RefFloat
	RefDouble
	RefObjectClass
	RefClass
	RefArray
)

// TypeRef is a reference to a type as it appears in method signatures,
// field declarations, and Apply nodes.
type TypeRef struct {
	Kind      TypeRefKind
	ClassName string   // meaningful for RefClass
	Elem      *TypeRef // meaningful for RefArray
}

// Primitive TypeRef constructors.
func Boolean() TypeRef { return TypeRef{Kind: RefBoolean} }
func Char() TypeRef    { return TypeRef{Kind: RefChar} }
func Byte() TypeRef    { return TypeRef{Kind: RefByte} }
func Short() TypeRef   { return TypeRef{Kind: RefShort} }
func Int() TypeRef     { return TypeRef{Kind: RefInt} }
func Long() TypeRef    { return TypeRef{Kind: RefLong} }
func Float() TypeRef   { return TypeRef{Kind: RefFloat} }
func Double() TypeRef  { return TypeRef{Kind: RefDouble} }
func ObjectClass() TypeRef { return TypeRef{Kind: RefObjectClass} }

// ClassRef builds a reference to a named class.
func ClassRef(name string) TypeRef { return TypeRef{Kind: RefClass, ClassName: name} }

// ArrayRef builds a reference to an array of elem.
func ArrayRef(elem TypeRef) TypeRef { return TypeRef{Kind: RefArray, Elem: &elem} }

func (r TypeRef) String() string {
	switch r.Kind {
	case RefBoolean:
		return "boolean"
	case RefChar:
		return "char"
	case RefByte:
		return "byte"
	case RefShort:
		return "short"
	case RefInt:
		return "int"
	case RefLong:
		return "long"
	case RefFloat:
		return "float"
	case RefDouble:
		return "double"
	case RefObjectClass:
		return "java.lang.Object"
	case RefClass:
		return r.ClassName
	case RefArray:
		return r.Elem.String() + "[]"
	default:
		return "unknown"
	}
}

// StructTypeName is the Wasm type name a class's instance struct is
// registered under.
func StructTypeName(className string) names.Name {
	return names.Name{Space: names.SpaceType, ID: className}
}

// arrayTypeName derives a stable Wasm array-type name for an array of elem,
// used only for RefArray's InferWasmType — this backend does not itself
// declare user array types (that is the instruction-selector's job); it
// only needs a stable name to reference one.
func arrayTypeName(elem TypeRef) names.Name {
	return names.Name{Space: names.SpaceType, ID: "array$" + strings.ReplaceAll(elem.String(), "[]", "$arr")}
}

// InferWasmType implements spec §4.D's "type inference from TypeRef":
// primitive refs map to their primitive types, ObjectClass maps to any,
// other class refs map to their class's struct type, and array refs map
// to their array type.
func InferWasmType(ref TypeRef) wasmtype.ValueType {
	switch ref.Kind {
	case RefBoolean, RefChar, RefByte, RefShort, RefInt:
		return wasmtype.I32()
	case RefLong:
		return wasmtype.I64()
	case RefFloat:
		return wasmtype.F32()
	case RefDouble:
		return wasmtype.F64()
	case RefObjectClass:
		return wasmtype.AnyRef()
	case RefClass:
		return wasmtype.RefNull(wasmtype.ByTypeName(StructTypeName(ref.ClassName)))
	case RefArray:
		return wasmtype.RefNull(wasmtype.ByTypeName(arrayTypeName(*ref.Elem)))
	default:
		return wasmtype.AnyRef()
	}
}
