// Package wasmbackend is a Go implementation of a backend that lowers a
// class-based intermediate representation (fields, methods, virtual and
// interface dispatch, module singletons) into a binary WebAssembly module
// targeting the GC proposal.
//
// # Architecture Overview
//
// The library is organized into several packages, each owning one stage of
// the lowering pipeline:
//
//	wasmbackend/         Root package; package documentation only
//	├── classir/         The source IR: classes, methods, trees, linking
//	├── preprocess/       Class-info construction and abstract-method
//	│                     slot recovery
//	├── plan/            Layout decisions: vtables, itables, field indices
//	├── context/          Function/string interning, helper imports, the
//	│                     start-function assembly
//	├── wasmtype/        The Wasm core + GC type system and instruction set
//	├── module/          The append-only module store the emitter reads
//	├── emit/            Binary encoding: LEB128, sections, instructions
//	├── names/           Name interning and local-variable frames
//	└── xerrors/         Structured error types for every pipeline phase
//
// # Pipeline
//
// Lowering a linked set of classes proceeds in dependency order:
//
//	lc := preprocess.Pass1(raw)
//	if err := preprocess.Pass2(lc); err != nil { ... }
//
//	p := plan.New(lc)
//	mod := module.New()
//	ctx := context.New(mod)
//	ctx.SetClasses(lc)
//
//	// ... lower every class's fields, vtable, itables, and methods into mod ...
//
//	ctx.Complete(initializers)
//
//	binary, err := emit.Module(mod)
//
// # Error Handling
//
// Every package reports failures as *xerrors.Error, tagged with the phase
// that raised them and one of a fixed set of kinds (class/method/field not
// found, label out of scope, opcode too wide, cyclic subtype, unsupported
// immediate, locals unavailable). Callers can match on kind with errors.Is
// against the xerrors convenience constructors.
//
// # Logging
//
// Packages that do nontrivial work (preprocess, plan, context, emit) each
// carry a package-scoped *zap.Logger, defaulting to a no-op logger until
// SetLogger installs one. Of these, only preprocess writes debug traces
// through it.
package wasmbackend
