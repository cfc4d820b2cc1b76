package emit

import (
	"context"
	"testing"

	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
	"github.com/tetratelabs/wazero"
)

func TestU32Encoding(t *testing.T) {
	cases := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}
	for _, c := range cases {
		b := newBuffer()
		b.u32(c.v)
		if got := b.Bytes(); string(got) != string(c.want) {
			t.Errorf("u32(%d) = % X, want % X", c.v, got, c.want)
		}
	}
}

func TestS32Encoding(t *testing.T) {
	cases := []struct {
		v    int32
		want []byte
	}{
		{-1, []byte{0x7F}},
		{-64, []byte{0x40}},
		{-65, []byte{0xBF, 0x7F}},
	}
	for _, c := range cases {
		b := newBuffer()
		b.s32(c.v)
		if got := b.Bytes(); string(got) != string(c.want) {
			t.Errorf("s32(%d) = % X, want % X", c.v, got, c.want)
		}
	}
}

func TestWriteOpcodeWidening(t *testing.T) {
	b := newBuffer()
	if err := writeOpcode(b, 0xFF); err != nil {
		t.Fatalf("0xFF should fit in one byte: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 byte, got %d", b.Len())
	}

	b = newBuffer()
	if err := writeOpcode(b, 0xFFFF); err != nil {
		t.Fatalf("0xFFFF should be accepted as two bytes: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 bytes, got %d", b.Len())
	}

	b = newBuffer()
	if err := writeOpcode(b, 0x10000); err == nil {
		t.Fatal("expected OpcodeTooWide for 0x10000")
	}
}

func TestEmptyModuleBoundary(t *testing.T) {
	mod := module.New()
	out, err := Module(mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	preamble := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	if len(out) < 8 || string(out[:8]) != string(preamble) {
		t.Fatalf("expected preamble %X, got %X", preamble, out[:min(8, len(out))])
	}

	idx := 8
	if idx >= len(out) || out[idx] != sectionType {
		t.Fatalf("expected a type section right after the preamble, got byte %X at %d", out[idx], idx)
	}
}

func TestLabelOutOfScope(t *testing.T) {
	g := &codegen{}
	if _, err := g.labels.resolve(names.Name{Space: names.SpaceLabel, ID: "loop"}); err == nil {
		t.Fatal("expected LabelOutOfScope when no frame is open")
	}
}

// TestSmokeRunsInWazero exercises a trivial non-GC, numeric-only module
// through wazero to confirm the binary emitter's section framing is valid
// Wasm; wazero does not validate GC-proposal types, so this only ever
// covers the non-GC subset of the emitter (i32 arithmetic, no structs).
func TestSmokeRunsInWazero(t *testing.T) {
	addSig := names.Name{Space: names.SpaceType, ID: "fn$add"}
	addFn := names.Name{Space: names.SpaceFunc, ID: "add"}

	// module.New() seeds a built-in itables array struct-ref type, which
	// is a GC type wazero's validator rejects; build a bare *Module
	// directly for this smoke test since it only exercises the numeric,
	// non-GC subset of the emitter.
	plain := &module.Module{}
	plain.AddFuncType(wasmtype.FunctionType{Name: addSig, Params: []wasmtype.StorageType{wasmtype.Storage(wasmtype.I32()), wasmtype.Storage(wasmtype.I32())}, Results: []wasmtype.StorageType{wasmtype.Storage(wasmtype.I32())}})
	plain.AddFunc(module.Function{
		Name:   addFn,
		Sig:    addSig,
		Params: []module.Local{{Name: "a", Type: wasmtype.I32()}, {Name: "b", Type: wasmtype.I32()}},
		Body: []wasmtype.Instruction{
			{Opcode: uint32(wasmtype.OpLocalGet), Imm: wasmtype.ImmLocalIdx{Local: "a"}},
			{Opcode: uint32(wasmtype.OpLocalGet), Imm: wasmtype.ImmLocalIdx{Local: "b"}},
			{Opcode: uint32(wasmtype.OpI32Add), Imm: wasmtype.ImmNone{}},
		},
	})
	plain.AddExport(module.Export{Name: "add", Kind: module.ExportFunc, Target: addFn})

	out, err := Module(plain)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, out)
	if err != nil {
		t.Fatalf("wazero rejected the emitted module: %v", err)
	}
	inst, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("wazero failed to instantiate: %v", err)
	}
	defer inst.Close(ctx)

	fn := inst.ExportedFunction("add")
	if fn == nil {
		t.Fatal("expected exported function \"add\"")
	}
	results, err := fn.Call(ctx, 2, 3)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if len(results) != 1 || results[0] != 5 {
		t.Fatalf("add(2, 3) = %v, want [5]", results)
	}
}
