package emit

import (
	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
	"github.com/SethTisue/scala-wasm/xerrors"
)

// typeIndex assigns every declared type definition a dense index, in the
// order referenced by every TypeIdx elsewhere in the module: the
// topologically sorted rec group (structs, then arrays), followed by
// function types (spec §4.A, §4.F).
type typeIndex map[names.Name]uint32

func buildTypeIndex(structs []wasmtype.StructType, arrays []wasmtype.ArrayType, funcs []wasmtype.FunctionType) typeIndex {
	idx := make(typeIndex, len(structs)+len(arrays)+len(funcs))
	var next uint32
	for _, s := range structs {
		idx[s.Name] = next
		next++
	}
	for _, a := range arrays {
		idx[a.Name] = next
		next++
	}
	for _, f := range funcs {
		idx[f.Name] = next
		next++
	}
	return idx
}

func (idx typeIndex) lookup(n names.Name) (uint32, error) {
	i, ok := idx[n]
	if !ok {
		return 0, xerrors.New(xerrors.PhaseEmit, xerrors.KindLabelOutOfScope).
			Entity(n.ID).Detail("type %q was never registered in the module", n.ID).Build()
	}
	return i, nil
}

func writeValueType(b *buffer, v wasmtype.ValueType, idx typeIndex) error {
	switch v.Kind {
	case wasmtype.KindI32:
		b.byte(wasmtype.ByteI32)
	case wasmtype.KindI64:
		b.byte(wasmtype.ByteI64)
	case wasmtype.KindF32:
		b.byte(wasmtype.ByteF32)
	case wasmtype.KindF64:
		b.byte(wasmtype.ByteF64)
	case wasmtype.KindRef:
		b.byte(wasmtype.ByteRef)
		return writeHeapType(b, v.Heap, idx)
	case wasmtype.KindRefNull:
		b.byte(wasmtype.ByteRefNull)
		return writeHeapType(b, v.Heap, idx)
	}
	return nil
}

func writeHeapType(b *buffer, ht wasmtype.HeapType, idx typeIndex) error {
	if ht.Kind == wasmtype.HeapSimple {
		b.byte(wasmtype.HeapByte(ht.Simple))
		return nil
	}
	i, err := idx.lookup(ht.Name)
	if err != nil {
		return err
	}
	b.s33OfUInt(i)
	return nil
}

func writeStorageType(b *buffer, st wasmtype.StorageType, idx typeIndex) error {
	switch st.Kind {
	case wasmtype.StoragePackedI8:
		b.byte(0x78)
		return nil
	case wasmtype.StoragePackedI16:
		b.byte(0x77)
		return nil
	default:
		return writeValueType(b, st.Value, idx)
	}
}

func writeFieldType(b *buffer, ft wasmtype.FieldType, idx typeIndex) error {
	if err := writeStorageType(b, ft.Type, idx); err != nil {
		return err
	}
	b.boolean(ft.Mutable)
	return nil
}

// writeStructSubtype writes a struct's GC composite type, always wrapped
// in the explicit sub-type form so the optional super-type list has
// somewhere to go (spec §4.F: "Struct: byte 0x50 (sub), opt(superType,
// writeTypeIdx), byte 0x5F, vec(fields, fieldType)").
func writeStructSubtype(b *buffer, st wasmtype.StructType, idx typeIndex) error {
	b.byte(wasmtype.ByteSub)
	if st.SuperType != nil {
		i, err := idx.lookup(*st.SuperType)
		if err != nil {
			return err
		}
		b.u32(1)
		b.u32(i)
	} else {
		b.u32(0)
	}
	b.byte(wasmtype.ByteStruct)
	b.u32(uint32(len(st.Fields)))
	for _, f := range st.Fields {
		if err := writeFieldType(b, f, idx); err != nil {
			return err
		}
	}
	return nil
}

// writeArraySubtype writes an array's GC composite type directly — arrays
// never declare a super type, so no sub-wrapper is needed (spec §4.F:
// "Array: byte 0x5E, field type").
func writeArraySubtype(b *buffer, at wasmtype.ArrayType, idx typeIndex) error {
	b.byte(wasmtype.ByteArrType)
	return writeFieldType(b, at.Element, idx)
}

// writeFuncSubtype writes a function type directly: byte 0x60, then the
// params result-type vector, then the results result-type vector (spec
// §4.F: "Function: byte 0x60, resultType(params), resultType(results)").
func writeFuncSubtype(b *buffer, ft wasmtype.FunctionType, idx typeIndex) error {
	b.byte(wasmtype.ByteFuncType)
	b.u32(uint32(len(ft.Params)))
	for _, p := range ft.Params {
		if err := writeStorageType(b, p, idx); err != nil {
			return err
		}
	}
	b.u32(uint32(len(ft.Results)))
	for _, r := range ft.Results {
		if err := writeStorageType(b, r, idx); err != nil {
			return err
		}
	}
	return nil
}

// writeTypeSection writes the Type section body (spec §4.F §2): the
// section's top-level vector holds one rec-group entry carrying every
// struct type (topologically sorted by RecGroupTypes) followed by every
// array type (appended here from mod.Arrays()), then one standalone
// subtype entry per function type. Function types are never inside the
// rec group. The rec-group entry is left out when it would hold no types,
// so a module with only function types emits a plain MVP type section.
func writeTypeSection(mod *module.Module) ([]byte, error) {
	sorted, err := mod.RecGroupTypes()
	if err != nil {
		return nil, err
	}
	arrays := mod.Arrays()
	funcTypes := mod.FuncTypes()
	idx := buildTypeIndex(sorted, arrays, funcTypes)

	groupSize := len(sorted) + len(arrays)
	entries := len(funcTypes)
	if groupSize > 0 {
		entries++
	}

	sec := newBuffer()
	sec.u32(uint32(entries))

	if groupSize > 0 {
		sec.byte(wasmtype.ByteRecType)
		sec.u32(uint32(groupSize))
	}
	for _, s := range sorted {
		if err := writeStructSubtype(sec, s, idx); err != nil {
			return nil, err
		}
	}
	for _, a := range arrays {
		if err := writeArraySubtype(sec, a, idx); err != nil {
			return nil, err
		}
	}

	for _, f := range funcTypes {
		if err := writeFuncSubtype(sec, f, idx); err != nil {
			return nil, err
		}
	}

	return sec.Bytes(), nil
}
