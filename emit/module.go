package emit

import (
	"github.com/SethTisue/scala-wasm/module"
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
)

// Section ids (spec §4.F).
const (
	sectionType     = 0x01
	sectionImport   = 0x02
	sectionFunction = 0x03
	sectionGlobal   = 0x06
	sectionExport   = 0x07
	sectionStart    = 0x08
	sectionCode     = 0x0A
)

const (
	importKindFunc   = 0x00
	exportKindFunc   = 0x00
	exportKindGlobal = 0x03
)

// Module serializes mod into a complete Wasm binary, writing every
// section spec §4.F lists, in order. The Type section is always written;
// every other section is omitted when its vector would be empty (spec §8
// boundary: "a module with no defined functions and no globals still
// emits a valid preamble... or omits them").
func Module(mod *module.Module) ([]byte, error) {
	out := newBuffer()
	out.rawBytes([]byte{0x00, 0x61, 0x73, 0x6D}) // magic "\0asm"
	out.rawBytes([]byte{0x01, 0x00, 0x00, 0x00}) // version 1

	typeSection, err := writeTypeSection(mod)
	if err != nil {
		return nil, err
	}
	writeSection(out, sectionType, typeSection)

	sorted, err := mod.RecGroupTypes()
	if err != nil {
		return nil, err
	}
	typeIdx := buildTypeIndex(sorted, mod.Arrays(), mod.FuncTypes())
	funcIdx := buildFuncIndex(mod)
	globalIdx := buildGlobalIndex(mod)

	if imps := mod.Imports(); len(imps) > 0 {
		writeSection(out, sectionImport, byteLengthSubSectionBody(func(b *buffer) {
			vecEncode(b, imps, func(b *buffer, imp module.Import) {
				b.name(imp.Module)
				b.name(imp.Field)
				b.byte(importKindFunc)
				i, lookupErr := typeIdx.lookup(imp.Sig)
				if lookupErr != nil {
					err = lookupErr
					return
				}
				b.u32(i)
			})
		}))
		if err != nil {
			return nil, err
		}
	}

	if funcs := mod.Funcs(); len(funcs) > 0 {
		writeSection(out, sectionFunction, byteLengthSubSectionBody(func(b *buffer) {
			vecEncode(b, funcs, func(b *buffer, f module.Function) {
				i, lookupErr := typeIdx.lookup(f.Sig)
				if lookupErr != nil {
					err = lookupErr
					return
				}
				b.u32(i)
			})
		}))
		if err != nil {
			return nil, err
		}
	}

	if globals := mod.Globals(); len(globals) > 0 {
		gen := &codegen{types: typeIdx, funcs: funcIdx, globals: globalIdx, structs: sorted}
		writeSection(out, sectionGlobal, byteLengthSubSectionBody(func(b *buffer) {
			vecEncode(b, globals, func(b *buffer, g module.Global) {
				if vtErr := writeValueType(b, g.Type, typeIdx); vtErr != nil {
					err = vtErr
					return
				}
				b.boolean(g.Mutable)
				if exprErr := gen.writeExpr(b, g.Init); exprErr != nil {
					err = exprErr
				}
			})
		}))
		if err != nil {
			return nil, err
		}
	}

	if exports := mod.Exports(); len(exports) > 0 {
		writeSection(out, sectionExport, byteLengthSubSectionBody(func(b *buffer) {
			vecEncode(b, exports, func(b *buffer, e module.Export) {
				b.name(e.Name)
				switch e.Kind {
				case module.ExportFunc:
					b.byte(exportKindFunc)
					i, lookupErr := funcIdx.lookup(e.Target)
					if lookupErr != nil {
						err = lookupErr
						return
					}
					b.u32(i)
				case module.ExportGlobal:
					b.byte(exportKindGlobal)
					i, lookupErr := globalIdx.lookup(e.Target)
					if lookupErr != nil {
						err = lookupErr
						return
					}
					b.u32(i)
				}
			})
		}))
		if err != nil {
			return nil, err
		}
	}

	if start := mod.Start(); start != nil {
		writeSection(out, sectionStart, byteLengthSubSectionBody(func(b *buffer) {
			i, lookupErr := funcIdx.lookup(*start)
			if lookupErr != nil {
				err = lookupErr
				return
			}
			b.u32(i)
		}))
		if err != nil {
			return nil, err
		}
	}

	if funcs := mod.Funcs(); len(funcs) > 0 {
		writeSection(out, sectionCode, byteLengthSubSectionBody(func(b *buffer) {
			vecEncode(b, funcs, func(b *buffer, f module.Function) {
				fnBytes := byteLengthSubSection(func(fb *buffer) {
					if bodyErr := writeFuncBody(fb, f, typeIdx, funcIdx, globalIdx, sorted); bodyErr != nil {
						err = bodyErr
					}
				})
				b.rawBytes(fnBytes)
			})
		}))
		if err != nil {
			return nil, err
		}
	}

	return out.Bytes(), nil
}

func writeSection(out *buffer, id byte, body []byte) {
	out.byte(id)
	out.u32(uint32(len(body)))
	out.rawBytes(body)
}

// byteLengthSubSectionBody runs f against a fresh buffer and returns its
// raw bytes, for callers (like writeSection) that add their own length
// prefix around a section body, as opposed to byteLengthSubSection, which
// prefixes the length itself (used for nested framing like Code-section
// function bodies).
func byteLengthSubSectionBody(f func(*buffer)) []byte {
	b := newBuffer()
	f(b)
	return b.Bytes()
}

// writeFuncBody writes one Code-section entry: the non-parameter locals
// vector followed by the body expression (spec §4.F "Function body").
func writeFuncBody(b *buffer, f module.Function, typeIdx typeIndex, funcIdx funcIndex, globalIdx globalIndex, structs []wasmtype.StructType) error {
	locals := names.NewLocalFrame()
	for _, p := range f.Params {
		locals.AddParam(p.Name)
	}
	for _, l := range f.Locals {
		locals.AddLocal(l.Name)
	}

	var err error
	vecEncode(b, f.Locals, func(b *buffer, l module.Local) {
		b.u32(1)
		if vtErr := writeValueType(b, l.Type, typeIdx); vtErr != nil {
			err = vtErr
		}
	})
	if err != nil {
		return err
	}

	gen := &codegen{types: typeIdx, funcs: funcIdx, globals: globalIdx, structs: structs, locals: locals}
	return gen.writeExpr(b, f.Body)
}
