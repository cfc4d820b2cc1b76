// Package context implements the backend's context (spec component C): a
// deduplicating function-signature interner, a string-constant global
// interner, the helper-import catalogue, and start-function assembly. It
// also owns the frozen class-info table the preprocessor populates,
// matching spec §3's ownership rule ("the context holds a reference to
// the module and owns the interners... class infos are owned by the
// context").
package context

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SethTisue/scala-wasm/classir"
	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
)

// internedSig pairs an already-registered signature with the Name it was
// assigned, so intern can scan for structural equality (spec §4.C: intern
// returns the existing name if an equal sig was interned before).
type internedSig struct {
	sig  wasmtype.Signature
	name names.Name
}

// Context is the mutable build-phase object threaded through
// preprocessing and instruction selection. It must not be read from
// concurrently with further mutation (spec §5).
type Context struct {
	mod      *module.Module
	registry *names.Registry
	classes  *classir.LinkedClasses

	funcTypes   []internedSig
	nextFuncIdx int

	strings      map[string]names.Name
	stringOrder  []string
	nextStringID int

	helperFuncs map[string]names.Name
}

// Option configures a Context at construction time (spec §1
// "Configuration": the only configuration surface is programmatic).
type Option func(*Context)

// WithLogger installs l as the context package's logger. Options are
// applied before New registers the helper imports.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		SetLogger(l)
	}
}

// WithFuncCapacity pre-sizes the function-signature interner's backing
// slice, avoiding reallocation when the caller knows roughly how many
// distinct signatures a module will intern.
func WithFuncCapacity(n int) Option {
	return func(c *Context) {
		if cap(c.funcTypes) >= n {
			return
		}
		grown := make([]internedSig, len(c.funcTypes), n)
		copy(grown, c.funcTypes)
		c.funcTypes = grown
	}
}

// WithStringCapacity pre-sizes the string-constant interner's backing map.
func WithStringCapacity(n int) Option {
	return func(c *Context) {
		grown := make(map[string]names.Name, n)
		for k, v := range c.strings {
			grown[k] = v
		}
		c.strings = grown
	}
}

// New builds a Context over mod, applying opts, then registering every
// helper import from the catalogue (spec §4.C: "on context creation,
// register every helper listed in §6").
func New(mod *module.Module, opts ...Option) *Context {
	c := &Context{
		mod:          mod,
		registry:     names.New(),
		strings:      make(map[string]names.Name),
		nextStringID: 1,
		helperFuncs:  make(map[string]names.Name),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, s := range HelperSpecs() {
		c.registerHelper(s)
	}
	return c
}

// Module returns the underlying module store.
func (c *Context) Module() *module.Module { return c.mod }

// Registry returns the shared name registry.
func (c *Context) Registry() *names.Registry { return c.registry }

// SetClasses installs the frozen class-info table built by the
// preprocessor (spec §2: "D populates the class-info table in C").
func (c *Context) SetClasses(lc *classir.LinkedClasses) { c.classes = lc }

// Classes returns the frozen class-info table, or nil if SetClasses has
// not been called yet.
func (c *Context) Classes() *classir.LinkedClasses { return c.classes }

// Intern returns the FunctionType name for sig, registering a fresh
// FunctionType on first occurrence (spec §4.C, §8 invariant 7: interning
// is a function of structural equality).
func (c *Context) Intern(sig wasmtype.Signature) names.Name {
	for _, entry := range c.funcTypes {
		if entry.sig.Equal(sig) {
			return entry.name
		}
	}

	name := names.Name{Space: names.SpaceType, ID: fmt.Sprintf("fn$%d", c.nextFuncIdx)}
	c.nextFuncIdx++

	c.mod.AddFuncType(wasmtype.FunctionType{
		Name:    name,
		Params:  sig.Params,
		Results: sig.Results,
	})
	c.registry.Insert(name)
	c.funcTypes = append(c.funcTypes, internedSig{sig: sig, name: name})
	return name
}

// InternString returns the global name holding the runtime value of s,
// allocating a fresh global with a placeholder initializer on first
// occurrence (spec §4.C). The true value is constructed by the
// start-function instructions Complete assembles.
func (c *Context) InternString(s string) names.Name {
	if name, ok := c.strings[s]; ok {
		return name
	}

	name := names.Name{Space: names.SpaceGlobal, ID: fmt.Sprintf("string$%d", c.nextStringID)}
	c.nextStringID++

	c.mod.AddGlobal(module.Global{
		Name:    name,
		Type:    wasmtype.AnyRef(),
		Mutable: true,
		Init: []wasmtype.Instruction{
			{Opcode: uint32(wasmtype.OpI32Const), Imm: wasmtype.ImmI32{Value: 0}},
			{Opcode: wasmtype.GCOpcode(wasmtype.GCRefI31)},
		},
	})
	c.registry.Insert(name)

	c.strings[s] = name
	c.stringOrder = append(c.stringOrder, s)
	return name
}

// InternedStrings returns every interned string constant, in the order
// InternString first encountered it — the order Complete walks when
// assembling the string-construction prologue.
func (c *Context) InternedStrings() []string {
	return append([]string(nil), c.stringOrder...)
}

// StringGlobal returns the global name previously assigned to s by
// InternString.
func (c *Context) StringGlobal(s string) (names.Name, bool) {
	n, ok := c.strings[s]
	return n, ok
}

func (c *Context) registerHelper(spec HelperSpec) {
	sigName := c.Intern(wasmtype.Signature{Params: spec.Params, Results: spec.Results})
	fnName := names.Name{Space: names.SpaceFunc, ID: spec.ClassName + "." + spec.MethodName}
	c.registry.Insert(fnName)
	c.mod.AddImport(module.Import{
		Module: spec.ClassName,
		Field:  spec.MethodName,
		Name:   fnName,
		Sig:    sigName,
	})
	c.helperFuncs[spec.ClassName+"."+spec.MethodName] = fnName
}

// HelperFunc returns the func name registered for the helper import
// identified by className.methodName, if the catalogue declared one.
func (c *Context) HelperFunc(className, methodName string) (names.Name, bool) {
	n, ok := c.helperFuncs[className+"."+methodName]
	return n, ok
}
