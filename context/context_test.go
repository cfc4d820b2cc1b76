package context

import (
	"testing"

	"go.uber.org/zap"

	"github.com/SethTisue/scala-wasm/classir"
	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/wasmtype"
)

func TestNewRegistersEveryHelperAsAnImport(t *testing.T) {
	mod := module.New()
	ctx := New(mod)

	specs := HelperSpecs()
	if len(mod.Imports()) != len(specs) {
		t.Fatalf("expected %d imports, got %d", len(specs), len(mod.Imports()))
	}
	if _, ok := ctx.HelperFunc("Predef", "is"); !ok {
		t.Error("expected Predef.is to be registered")
	}
}

func TestInternDeduplicatesEqualSignatures(t *testing.T) {
	mod := module.New()
	ctx := New(mod)

	before := len(mod.FuncTypes())
	sig := wasmtype.Signature{
		Params:  []wasmtype.StorageType{wasmtype.Storage(wasmtype.I32())},
		Results: []wasmtype.StorageType{wasmtype.Storage(wasmtype.I32())},
	}
	n1 := ctx.Intern(sig)
	n2 := ctx.Intern(sig)
	if n1 != n2 {
		t.Errorf("Intern should return the same name for equal signatures, got %v and %v", n1, n2)
	}
	if len(mod.FuncTypes()) != before+1 {
		t.Errorf("expected exactly one new FunctionType to be registered, got %d new", len(mod.FuncTypes())-before)
	}
}

func TestInternStringAssignsDenseIndicesStartingAtOne(t *testing.T) {
	mod := module.New()
	ctx := New(mod)

	g1 := ctx.InternString("hello")
	g2 := ctx.InternString("world")
	g1Again := ctx.InternString("hello")

	if g1 != g1Again {
		t.Error("interning the same string twice should return the same global")
	}
	if g1 == g2 {
		t.Error("interning distinct strings should return distinct globals")
	}
	if g1.ID != "string$1" || g2.ID != "string$2" {
		t.Errorf("expected dense indices starting at 1, got %q and %q", g1.ID, g2.ID)
	}
}

func TestCompleteOmitsStartWhenNothingToRun(t *testing.T) {
	mod := module.New()
	ctx := New(mod)
	ctx.Complete(nil)
	if mod.Start() != nil {
		t.Error("expected no start function when there are no strings or initializers")
	}
}

func TestCompleteRegistersStartForInternedString(t *testing.T) {
	mod := module.New()
	ctx := New(mod)
	ctx.InternString("")
	ctx.Complete(nil)

	if mod.Start() == nil {
		t.Fatal("expected a start function to be registered")
	}
	funcs := mod.Funcs()
	if len(funcs) != 1 || funcs[0].Name.ID != "start" {
		t.Fatalf("expected exactly one function named start, got %+v", funcs)
	}
	// Zero-length string: call emptyString then immediately global.set,
	// no char-construction instructions in between (spec §8 boundary).
	body := funcs[0].Body
	if len(body) != 2 {
		t.Fatalf("expected 2 instructions for an empty string constant, got %d", len(body))
	}
	if body[0].Opcode != uint32(wasmtype.OpCall) {
		t.Errorf("expected first instruction to be call, got opcode %x", body[0].Opcode)
	}
	if body[1].Opcode != uint32(wasmtype.OpGlobalSet) {
		t.Errorf("expected second instruction to be global.set, got opcode %x", body[1].Opcode)
	}
}

func TestCompleteVoidMainMethod(t *testing.T) {
	mod := module.New()
	ctx := New(mod)
	ctx.Complete([]classir.ModuleInitializer{
		{Kind: classir.VoidMainMethod, ClassName: "Main", MethodName: "main"},
	})

	funcs := mod.Funcs()
	if len(funcs) != 1 {
		t.Fatalf("expected a start function, got %d funcs", len(funcs))
	}
	body := funcs[0].Body
	if len(body) != 3 {
		t.Fatalf("expected 3 instructions (call loadModule, ref.as_non_null, call main), got %d", len(body))
	}
	if body[1].Opcode != uint32(wasmtype.OpRefAsNonNull) {
		t.Errorf("expected middle instruction to be ref.as_non_null, got %x", body[1].Opcode)
	}
}

func TestWithFuncCapacityPreSizesWithoutLosingExistingEntries(t *testing.T) {
	mod := module.New()
	ctx := New(mod)
	sig := wasmtype.Signature{Results: []wasmtype.StorageType{wasmtype.Storage(wasmtype.I32())}}
	before := ctx.Intern(sig)

	WithFuncCapacity(64)(ctx)

	if cap(ctx.funcTypes) < 64 {
		t.Errorf("expected funcTypes capacity >= 64, got %d", cap(ctx.funcTypes))
	}
	if again := ctx.Intern(sig); again != before {
		t.Error("pre-sizing must not lose or duplicate an already-interned signature")
	}
}

func TestWithStringCapacityPreSizesWithoutLosingExistingEntries(t *testing.T) {
	mod := module.New()
	ctx := New(mod)
	before := ctx.InternString("hello")

	WithStringCapacity(64)(ctx)

	if again, ok := ctx.StringGlobal("hello"); !ok || again != before {
		t.Error("pre-sizing must not lose an already-interned string")
	}
}

func TestWithLoggerInstallsPackageLogger(t *testing.T) {
	defer SetLogger(zap.NewNop())
	l := zap.NewExample()
	New(module.New(), WithLogger(l))
	if Logger() != l {
		t.Error("expected WithLogger to install the given logger before construction proceeds")
	}
}

func TestCompleteIgnoresMainMethodWithArgs(t *testing.T) {
	mod := module.New()
	ctx := New(mod)
	ctx.Complete([]classir.ModuleInitializer{
		{Kind: classir.MainMethodWithArgs, ClassName: "Main", MethodName: "main", Args: []classir.TypeRef{classir.Int()}},
	})
	if mod.Start() != nil {
		t.Error("a main-with-args initializer alone should emit no start function")
	}
}
