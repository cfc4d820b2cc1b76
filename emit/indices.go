package emit

import (
	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
	"github.com/SethTisue/scala-wasm/xerrors"
)

// funcIndex is the func index space: imported functions first, in
// declaration order, then defined functions, also in declaration order
// (spec §4.A).
type funcIndex map[names.Name]uint32

func buildFuncIndex(mod *module.Module) funcIndex {
	idx := make(funcIndex)
	var next uint32
	for _, imp := range mod.Imports() {
		idx[imp.Name] = next
		next++
	}
	for _, f := range mod.Funcs() {
		idx[f.Name] = next
		next++
	}
	return idx
}

func (idx funcIndex) lookup(n names.Name) (uint32, error) {
	i, ok := idx[n]
	if !ok {
		return 0, xerrors.New(xerrors.PhaseEmit, xerrors.KindMethodNotFound).
			Entity(n.ID).Detail("function %q was never registered in the module", n.ID).Build()
	}
	return i, nil
}

// globalIndex is the global index space: declaration order (spec §4.A).
type globalIndex map[names.Name]uint32

func buildGlobalIndex(mod *module.Module) globalIndex {
	idx := make(globalIndex)
	for i, g := range mod.Globals() {
		idx[g.Name] = uint32(i)
	}
	return idx
}

func (idx globalIndex) lookup(n names.Name) (uint32, error) {
	i, ok := idx[n]
	if !ok {
		return 0, xerrors.New(xerrors.PhaseEmit, xerrors.KindFieldNotFound).
			Entity(n.ID).Detail("global %q was never registered in the module", n.ID).Build()
	}
	return i, nil
}

// fieldIndexOf resolves a struct field by name within its declaring
// struct's field list (spec §4.A: field index space is per-struct, in
// declared order).
func fieldIndexOf(structs []wasmtype.StructType, structName names.Name, fieldName string) (uint32, error) {
	for _, st := range structs {
		if st.Name != structName {
			continue
		}
		for i, f := range st.Fields {
			if f.Name == fieldName {
				return uint32(i), nil
			}
		}
		return 0, xerrors.FieldNotFound(xerrors.PhaseEmit, structName.ID, fieldName)
	}
	return 0, xerrors.ClassNotFound(xerrors.PhaseEmit, structName.ID)
}
