// Package module is the module store (spec component B): an append-only
// accumulator of declared types, imports, functions, globals, exports, and
// an optional start function, plus the topologically ordered recursive
// type group the binary emitter reads from. Mutation and emission are
// phase-separated by construction (spec §5) — nothing here is safe to
// mutate concurrently with a read, but nothing needs to be, because the
// backend never does both at once.
package module

import (
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
	"github.com/SethTisue/scala-wasm/xerrors"
)

// ItablesArrayName is the well-known built-in array type every module
// carries (spec §6 "well-known names"): a non-null array of struct refs,
// used to hold each instance's flattened interface-dispatch tables.
var ItablesArrayName = names.Name{Space: names.SpaceType, ID: "itables"}

// ExportKind discriminates what an Export points at. The core only ever
// exports functions and globals (spec §4.F lists kind bytes 0x00 and 0x03).
type ExportKind byte

const (
	ExportFunc ExportKind = iota
	ExportGlobal
)

// Local is a (name, type) pair for a function parameter or non-parameter
// local variable.
type Local struct {
	Name string
	Type wasmtype.ValueType
}

// Import is an imported function (the only import kind the helper
// catalogue and the driver ever register — spec §6).
type Import struct {
	Module string
	Field  string
	Name   names.Name // registered in names.SpaceFunc
	Sig    names.Name // function-type name
}

// Function is a defined Wasm function.
type Function struct {
	Name   names.Name
	Sig    names.Name
	Params []Local
	Locals []Local
	Body   []wasmtype.Instruction
}

// Global is a defined Wasm global.
type Global struct {
	Name    names.Name
	Type    wasmtype.ValueType
	Mutable bool
	Init    []wasmtype.Instruction
}

// Export is an exported function or global.
type Export struct {
	Name   string
	Kind   ExportKind
	Target names.Name
}

// Module is the append-only store described above.
type Module struct {
	structs   []wasmtype.StructType
	arrays    []wasmtype.ArrayType
	funcTypes []wasmtype.FunctionType

	imports []Import
	funcs   []Function
	globals []Global
	exports []Export
	start   *names.Name
}

// New creates an empty module already carrying the built-in itables array
// type (spec §6, §8 boundary scenario 2).
func New() *Module {
	m := &Module{}
	m.AddArray(wasmtype.ArrayType{
		Name: ItablesArrayName,
		Element: wasmtype.FieldType{
			Type:    wasmtype.Storage(wasmtype.Ref(wasmtype.SimpleHeapType(wasmtype.HeapStructRef))),
			Mutable: false,
		},
	})
	return m
}

func (m *Module) AddStruct(s wasmtype.StructType)    { m.structs = append(m.structs, s) }
func (m *Module) AddArray(a wasmtype.ArrayType)      { m.arrays = append(m.arrays, a) }
func (m *Module) AddFuncType(f wasmtype.FunctionType) { m.funcTypes = append(m.funcTypes, f) }
func (m *Module) AddImport(i Import)                 { m.imports = append(m.imports, i) }
func (m *Module) AddFunc(f Function)                 { m.funcs = append(m.funcs, f) }
func (m *Module) AddGlobal(g Global)                 { m.globals = append(m.globals, g) }
func (m *Module) AddExport(e Export)                 { m.exports = append(m.exports, e) }
func (m *Module) SetStart(name names.Name)           { m.start = &name }

func (m *Module) Imports() []Import                  { return m.imports }
func (m *Module) Funcs() []Function                  { return m.funcs }
func (m *Module) Globals() []Global                  { return m.globals }
func (m *Module) Exports() []Export                  { return m.exports }
func (m *Module) FuncTypes() []wasmtype.FunctionType { return m.funcTypes }
func (m *Module) Arrays() []wasmtype.ArrayType       { return m.arrays }
func (m *Module) Structs() []wasmtype.StructType     { return m.structs }
func (m *Module) Start() *names.Name                 { return m.start }

// RecGroupTypes returns the module's struct types topologically sorted by
// subtype relation (a struct follows its declared super — spec §8
// invariant 3). Array types are not included; the emitter appends Arrays()
// after these structs when it writes the recursive type group. Function
// types are not part of the recursive group (spec §9); FuncTypes lists
// them separately.
func (m *Module) RecGroupTypes() ([]wasmtype.StructType, error) {
	sorted, err := topoSortStructs(m.structs)
	if err != nil {
		return nil, err
	}
	return sorted, nil
}

// topoSortStructs runs a Kahn-style pass: on each round, every struct
// whose super is absent or already emitted is appended, in original
// relative order. If a round makes no progress while structs remain, the
// subtype relation has a cycle (spec §4.B).
func topoSortStructs(structs []wasmtype.StructType) ([]wasmtype.StructType, error) {
	emitted := make(map[names.Name]bool, len(structs))
	remaining := append([]wasmtype.StructType(nil), structs...)
	out := make([]wasmtype.StructType, 0, len(structs))

	for len(remaining) > 0 {
		var next []wasmtype.StructType
		progressed := false
		for _, s := range remaining {
			if s.SuperType == nil || emitted[*s.SuperType] {
				out = append(out, s)
				emitted[s.Name] = true
				progressed = true
			} else {
				next = append(next, s)
			}
		}
		if !progressed {
			remainingNames := make([]string, 0, len(remaining))
			for _, s := range remaining {
				remainingNames = append(remainingNames, s.Name.ID)
			}
			return nil, xerrors.CyclicSubtype(remainingNames)
		}
		remaining = next
	}
	return out, nil
}
