package preprocess

import (
	"testing"

	"github.com/SethTisue/scala-wasm/classir"
)

// TestAbstractMethodRecovery mirrors the spec §8 scenario: A extends B and
// calls b.c(); B extends C, overrides c, and declares its own b; C is
// abstract and declares c with no body. The raw class list as the linker
// would hand it over omits C's c from its method list (as if optimized
// away), and pass 2 must reinstate it because A's call site still
// references C.c.
func TestAbstractMethodRecovery(t *testing.T) {
	superB := "B"
	superC := "C"

	bCall := classir.Apply(classir.VarRef("this"), classir.ClassRef("C"), "c", nil, classir.Int())

	raw := []classir.RawClass{
		{
			Name:       "A",
			Kind:       classir.Class,
			SuperClass: &superB,
			Methods: []classir.RawMethod{
				{Name: "a", ResultType: classir.Int(), Body: &bCall},
			},
		},
		{
			Name:       "B",
			Kind:       classir.Class,
			SuperClass: &superC,
			Methods: []classir.RawMethod{
				{Name: "b", ResultType: classir.Int(), Body: ptrTree(classir.Literal())},
				{Name: "c", ResultType: classir.Int(), Body: ptrTree(classir.Literal())},
			},
		},
		{
			Name: "C",
			Kind: classir.AbstractClass,
			// c has no body here: this is the slot the linker erased.
		},
	}

	lc := Pass1(raw)
	if err := Pass2(lc); err != nil {
		t.Fatalf("Pass2 failed: %v", err)
	}

	c, ok := lc.Lookup("C")
	if !ok {
		t.Fatal("expected class C")
	}
	m, found := c.MethodNamed("c")
	if !found {
		t.Fatal("expected C.c to be recovered by pass 2")
	}
	if !m.IsAbstract {
		t.Error("recovered method should be marked abstract")
	}
	if m.ResultType.Kind != classir.RefInt {
		t.Errorf("recovered method result type = %v, want Int", m.ResultType.Kind)
	}
}

// TestAbstractMethodRecoveryIdempotent checks that running pass 2 twice
// does not append a second copy of the recovered slot.
func TestAbstractMethodRecoveryIdempotent(t *testing.T) {
	superC := "C"
	call := classir.Apply(classir.VarRef("this"), classir.ClassRef("C"), "c", nil, classir.Int())

	raw := []classir.RawClass{
		{
			Name:       "B",
			Kind:       classir.Class,
			SuperClass: &superC,
			Methods: []classir.RawMethod{
				{Name: "b", ResultType: classir.Int(), Body: &call},
			},
		},
		{Name: "C", Kind: classir.AbstractClass},
	}

	lc := Pass1(raw)
	if err := Pass2(lc); err != nil {
		t.Fatalf("first Pass2 failed: %v", err)
	}
	if err := Pass2(lc); err != nil {
		t.Fatalf("second Pass2 failed: %v", err)
	}

	c, _ := lc.Lookup("C")
	count := 0
	for _, m := range c.Methods {
		if m.Name.MethodName == "c" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 recovered copy of C.c, got %d", count)
	}
}

func ptrTree(t classir.Tree) *classir.Tree { return &t }
