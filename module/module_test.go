package module

import (
	"testing"

	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
	"github.com/SethTisue/scala-wasm/xerrors"
)

func typeName(id string) names.Name { return names.Name{Space: names.SpaceType, ID: id} }

func TestNewModuleHasBuiltinItablesArray(t *testing.T) {
	m := New()
	arrays := m.Arrays()
	if len(arrays) != 1 {
		t.Fatalf("expected exactly one built-in array type, got %d", len(arrays))
	}
	if arrays[0].Name != ItablesArrayName {
		t.Errorf("built-in array name = %v, want %v", arrays[0].Name, ItablesArrayName)
	}
}

func TestRecGroupTypesTopologicalOrder(t *testing.T) {
	m := New()
	// Declare out of dependency order: Child before Base.
	base := typeName("Base")
	child := typeName("Child")
	grandchild := typeName("Grandchild")

	m.AddStruct(wasmtype.StructType{Name: child, SuperType: &base})
	m.AddStruct(wasmtype.StructType{Name: grandchild, SuperType: &child})
	m.AddStruct(wasmtype.StructType{Name: base})

	sorted, err := m.RecGroupTypes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := map[names.Name]int{}
	for i, s := range sorted {
		pos[s.Name] = i
	}
	if pos[base] >= pos[child] {
		t.Errorf("Base (%d) should come before Child (%d)", pos[base], pos[child])
	}
	if pos[child] >= pos[grandchild] {
		t.Errorf("Child (%d) should come before Grandchild (%d)", pos[child], pos[grandchild])
	}
}

func TestRecGroupTypesIdempotentOnAlreadySortedInput(t *testing.T) {
	m := New()
	base := typeName("Base")
	child := typeName("Child")
	m.AddStruct(wasmtype.StructType{Name: base})
	m.AddStruct(wasmtype.StructType{Name: child, SuperType: &base})

	first, err := m.RecGroupTypes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m2 := New()
	for _, s := range first {
		m2.AddStruct(s)
	}
	second, err := m2.RecGroupTypes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("order changed at %d: %v vs %v", i, first[i].Name, second[i].Name)
		}
	}
}

func TestRecGroupTypesCyclicSubtype(t *testing.T) {
	m := New()
	a := typeName("A")
	b := typeName("B")
	m.AddStruct(wasmtype.StructType{Name: a, SuperType: &b})
	m.AddStruct(wasmtype.StructType{Name: b, SuperType: &a})

	_, err := m.RecGroupTypes()
	if err == nil {
		t.Fatal("expected CyclicSubtype error")
	}
	xerr, ok := err.(*xerrors.Error)
	if !ok || xerr.Kind != xerrors.KindCyclicSubtype {
		t.Fatalf("expected xerrors.KindCyclicSubtype, got %v", err)
	}
}

func TestAppendOnlyAccumulation(t *testing.T) {
	m := New()
	m.AddImport(Import{Module: "env", Field: "is", Name: names.Name{Space: names.SpaceFunc, ID: "is"}})
	m.AddFunc(Function{Name: names.Name{Space: names.SpaceFunc, ID: "start"}})
	m.AddGlobal(Global{Name: names.Name{Space: names.SpaceGlobal, ID: "g0"}})
	m.AddExport(Export{Name: "main", Kind: ExportFunc})

	if len(m.Imports()) != 1 || len(m.Funcs()) != 1 || len(m.Globals()) != 1 || len(m.Exports()) != 1 {
		t.Fatalf("expected one entry per collection, got imports=%d funcs=%d globals=%d exports=%d",
			len(m.Imports()), len(m.Funcs()), len(m.Globals()), len(m.Exports()))
	}

	if m.Start() != nil {
		t.Error("expected no start function by default")
	}
	start := names.Name{Space: names.SpaceFunc, ID: "start"}
	m.SetStart(start)
	if m.Start() == nil || *m.Start() != start {
		t.Errorf("SetStart did not take effect: %v", m.Start())
	}
}
