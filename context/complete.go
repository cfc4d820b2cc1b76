package context

import (
	"github.com/SethTisue/scala-wasm/classir"
	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
)

func call(fn names.Name) wasmtype.Instruction {
	return wasmtype.Instruction{Opcode: uint32(wasmtype.OpCall), Imm: wasmtype.ImmFuncIdx{Func: fn}}
}

func globalSet(g names.Name) wasmtype.Instruction {
	return wasmtype.Instruction{Opcode: uint32(wasmtype.OpGlobalSet), Imm: wasmtype.ImmGlobalIdx{Global: g}}
}

func i32Const(v int32) wasmtype.Instruction {
	return wasmtype.Instruction{Opcode: uint32(wasmtype.OpI32Const), Imm: wasmtype.ImmI32{Value: v}}
}

// Complete assembles the start-function instructions per spec §4.C and,
// if the result is non-empty, registers a nullary "start" function and
// sets it as the module's start function. Complete must run after every
// InternString call this build will ever make: the string-construction
// prologue only covers strings interned before Complete runs.
func (c *Context) Complete(initializers []classir.ModuleInitializer) {
	var instrs []wasmtype.Instruction

	// Step 1: build every interned string constant from its characters.
	emptyString, _ := c.HelperFunc("RuntimeString", "emptyString")
	charToString, _ := c.HelperFunc("RuntimeString", "charToString")
	stringConcat, _ := c.HelperFunc("RuntimeString", "stringConcat")
	for _, str := range c.stringOrder {
		g := c.strings[str]
		instrs = append(instrs, call(emptyString))
		for _, ch := range str {
			instrs = append(instrs, i32Const(int32(ch)))
			instrs = append(instrs, call(charToString))
			instrs = append(instrs, call(stringConcat))
		}
		instrs = append(instrs, globalSet(g))
	}

	// Step 2: dispatch each module initializer.
	for _, init := range initializers {
		switch init.Kind {
		case classir.VoidMainMethod:
			instrs = append(instrs, call(classir.LoadModuleFuncName(init.ClassName)))
			instrs = append(instrs, wasmtype.Instruction{Opcode: uint32(wasmtype.OpRefAsNonNull)})
			instrs = append(instrs, call(classir.FuncName(init.ClassName, init.MethodName)))
		case classir.MainMethodWithArgs:
			// argv is not yet supported (spec §9): deliberately emits
			// nothing rather than guessing at a calling convention.
		}
	}

	// Step 3: register a start function only if there is anything to run.
	if len(instrs) == 0 {
		return
	}

	sig := c.Intern(wasmtype.Signature{})
	startName := names.Name{Space: names.SpaceFunc, ID: "start"}
	c.registry.Insert(startName)
	c.mod.AddFunc(module.Function{
		Name: startName,
		Sig:  sig,
		Body: instrs,
	})
	c.mod.SetStart(startName)
}
