package classir

import "github.com/SethTisue/scala-wasm/names"

// FuncName is the stable Wasm function name an instance method compiles
// to. Planner, context, and emitter all address the same method through
// this name, so a call site built before the defining function is
// registered still resolves correctly once the emitter builds the func
// index space from the module's imports and functions (spec §4.F names
// are resolved to indices only at emission time).
func FuncName(className, methodName string) names.Name {
	return names.Name{Space: names.SpaceFunc, ID: className + "#" + methodName}
}

// LoadModuleFuncName is the synthesized accessor that lazily initializes
// and returns a module-class singleton (spec §4.C step 2's "call
// loadModule(className$)"). Its body is produced by the out-of-scope
// instruction selector; the context only ever references it by name.
func LoadModuleFuncName(className string) names.Name {
	return names.Name{Space: names.SpaceFunc, ID: className + "$.loadModule"}
}
