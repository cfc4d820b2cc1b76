package emit

import (
	"github.com/SethTisue/scala-wasm/names"
	"github.com/SethTisue/scala-wasm/wasmtype"
	"github.com/SethTisue/scala-wasm/xerrors"
)

// labelStack tracks the structured-control-flow scope stack for one
// function body: each open block/loop/if pushes an optional label
// identity, and END pops it (spec §4.F "Label resolution").
type labelStack struct {
	frames []*names.Name
}

func (s *labelStack) push(label *names.Name) { s.frames = append(s.frames, label) }

func (s *labelStack) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// resolve finds the relative depth of label from the top of the stack:
// the distance from the innermost open frame to the nearest enclosing
// frame whose identity equals label. Frames opened with no label still
// consume a depth slot, so depth is simply counted by position, not by
// how many labeled frames are skipped.
func (s *labelStack) resolve(label names.Name) (uint32, error) {
	for depth, i := 0, len(s.frames)-1; i >= 0; depth, i = depth+1, i-1 {
		if s.frames[i] != nil && *s.frames[i] == label {
			return uint32(depth), nil
		}
	}
	return 0, xerrors.LabelOutOfScope(label.ID)
}

// codegen bundles every index space an instruction body may need to
// resolve against, so a single function body's emission carries one
// value instead of four.
type codegen struct {
	types   typeIndex
	funcs   funcIndex
	globals globalIndex
	structs []wasmtype.StructType
	locals  *names.LocalFrame
	labels  labelStack
}

// opcodeTooWideThreshold is the largest two-byte opcode this emitter can
// represent (spec §7 OpcodeTooWide, §8 boundary: 0xFFFF accepted, 0x10000
// rejected).
const opcodeTooWideThreshold = 0xFFFF

func writeOpcode(b *buffer, opcode uint32) error {
	if opcode <= 0xFF {
		b.byte(byte(opcode))
		return nil
	}
	if opcode > opcodeTooWideThreshold {
		return xerrors.OpcodeTooWide(opcode)
	}
	b.byte(byte(opcode >> 8))
	b.byte(byte(opcode & 0xFF))
	return nil
}

// writeExpr emits instrs followed by the terminating end byte (spec
// §4.F). It fails if the label scope stack is not empty at the end, per
// spec §8 invariant 5.
func (g *codegen) writeExpr(b *buffer, instrs []wasmtype.Instruction) error {
	startDepth := len(g.labels.frames)
	for _, instr := range instrs {
		if err := g.writeInstruction(b, instr); err != nil {
			return err
		}
	}
	b.byte(wasmtype.OpEnd)
	if len(g.labels.frames) != startDepth {
		return xerrors.New(xerrors.PhaseEmit, xerrors.KindLabelOutOfScope).
			Detail("expression left %d unclosed structured scope(s)", len(g.labels.frames)-startDepth).Build()
	}
	return nil
}

func (g *codegen) writeInstruction(b *buffer, instr wasmtype.Instruction) error {
	if err := writeOpcode(b, instr.Opcode); err != nil {
		return err
	}
	if err := g.writeImmediate(b, instr.Imm); err != nil {
		return err
	}

	switch instr.Opcode {
	case uint32(wasmtype.OpBlock), uint32(wasmtype.OpLoop), uint32(wasmtype.OpIf):
		g.labels.push(instr.Label)
	case uint32(wasmtype.OpEnd):
		g.labels.pop()
	}
	return nil
}

func (g *codegen) writeImmediate(b *buffer, imm wasmtype.Immediate) error {
	switch v := imm.(type) {
	case nil, wasmtype.ImmNone:
		return nil

	case wasmtype.ImmI32:
		b.i32(v.Value)
	case wasmtype.ImmI64:
		b.i64(v.Value)
	case wasmtype.ImmF32:
		b.f32(v.Value)
	case wasmtype.ImmF64:
		b.f64(v.Value)

	case wasmtype.ImmMemArg:
		b.u32(v.Offset)
		b.u32(v.Align)

	case wasmtype.ImmBlockType:
		return g.writeBlockType(b, v)

	case wasmtype.ImmFuncIdx:
		i, err := g.funcs.lookup(v.Func)
		if err != nil {
			return err
		}
		b.u32(i)

	case wasmtype.ImmTypeIdx:
		i, err := g.types.lookup(v.Type)
		if err != nil {
			return err
		}
		b.u32(i)

	case wasmtype.ImmGlobalIdx:
		i, err := g.globals.lookup(v.Global)
		if err != nil {
			return err
		}
		b.u32(i)

	case wasmtype.ImmLocalIdx:
		if g.locals == nil {
			return xerrors.LocalsUnavailable(0)
		}
		i, ok := g.locals.IndexOf(v.Local)
		if !ok {
			return xerrors.LocalsUnavailable(uint32(0))
		}
		b.u32(uint32(i))

	case wasmtype.ImmLabelIdx:
		depth, err := g.labels.resolve(v.Label)
		if err != nil {
			return err
		}
		b.u32(depth)

	case wasmtype.ImmStructFieldIdx:
		i, err := fieldIndexOf(g.structs, v.Struct, v.Field)
		if err != nil {
			return err
		}
		b.u32(i)

	case wasmtype.ImmHeapType:
		return writeHeapType(b, v.Heap, g.types)

	case wasmtype.ImmCastFlags:
		var flags byte
		if v.Nullable1 {
			flags |= 1
		}
		if v.Nullable2 {
			flags |= 2
		}
		b.byte(flags)

	case wasmtype.ImmLabelIdxVector:
		return xerrors.UnsupportedImmediate("LabelIdxVector")
	case wasmtype.ImmTableIdx:
		return xerrors.UnsupportedImmediate("TableIdx")
	case wasmtype.ImmTagIdx:
		return xerrors.UnsupportedImmediate("TagIdx")

	default:
		return xerrors.UnsupportedImmediate("unknown")
	}
	return nil
}

func (g *codegen) writeBlockType(b *buffer, bt wasmtype.ImmBlockType) error {
	switch bt.Kind {
	case wasmtype.BlockNone:
		b.byte(wasmtype.ByteBlockVoid)
		return nil
	case wasmtype.BlockValue:
		return writeValueType(b, bt.Value, g.types)
	case wasmtype.BlockFunc:
		i, err := g.types.lookup(bt.Func)
		if err != nil {
			return err
		}
		b.s33OfUInt(i)
		return nil
	}
	return nil
}
