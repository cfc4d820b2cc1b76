package wasmtype

import (
	"testing"

	"github.com/SethTisue/scala-wasm/names"
)

func TestValueTypeEqual(t *testing.T) {
	a := Ref(ByTypeName(names.Name{Space: names.SpaceType, ID: "Foo.vtable"}))
	b := Ref(ByTypeName(names.Name{Space: names.SpaceType, ID: "Foo.vtable"}))
	c := Ref(ByTypeName(names.Name{Space: names.SpaceType, ID: "Bar.vtable"}))

	if !a.Equal(b) {
		t.Error("expected equal refs to the same type name to be Equal")
	}
	if a.Equal(c) {
		t.Error("expected refs to different type names to differ")
	}
	if I32().Equal(I64()) {
		t.Error("i32 should not equal i64")
	}
	if !AnyRef().Equal(AnyRef()) {
		t.Error("anyref should equal itself")
	}
}

func TestFunctionTypeEqualIgnoresName(t *testing.T) {
	f1 := FunctionType{
		Name:    names.Name{Space: names.SpaceType, ID: "sig$0"},
		Params:  []StorageType{Storage(I32()), Storage(AnyRef())},
		Results: []StorageType{Storage(I32())},
	}
	f2 := FunctionType{
		Name:    names.Name{Space: names.SpaceType, ID: "sig$1"},
		Params:  []StorageType{Storage(I32()), Storage(AnyRef())},
		Results: []StorageType{Storage(I32())},
	}
	f3 := FunctionType{
		Name:   names.Name{Space: names.SpaceType, ID: "sig$2"},
		Params: []StorageType{Storage(I32())},
	}

	if !f1.Equal(f2) {
		t.Error("signatures with equal params/results but different Name should be Equal")
	}
	if f1.Equal(f3) {
		t.Error("signatures with different arity should not be Equal")
	}
}

func TestGCOpcodeWidening(t *testing.T) {
	op := GCOpcode(GCStructNew)
	if op <= 0xFF {
		t.Fatalf("GCOpcode should widen past one byte, got 0x%X", op)
	}
	if op>>8 != uint32(OpPrefixGC) {
		t.Fatalf("high byte of widened opcode = 0x%X, want 0x%X", op>>8, OpPrefixGC)
	}
	if op&0xFF != GCStructNew {
		t.Fatalf("low byte of widened opcode = 0x%X, want 0x%X", op&0xFF, GCStructNew)
	}
}

func TestPackedStorageTypes(t *testing.T) {
	ft := FieldType{Type: PackedI8(), Mutable: true}
	if ft.Type.Kind != StoragePackedI8 {
		t.Errorf("expected StoragePackedI8, got %v", ft.Type.Kind)
	}
}
