package wasmtype

import "github.com/SethTisue/scala-wasm/names"

// Instruction is one element of the open sum described in spec §3: an
// opcode (one byte, or two when widened past 0xFF — see GCOpcode) plus a
// heterogeneous immediate list. Each concrete Immediate variant below
// bakes in the shape of its own immediates, so the emitter can switch
// exhaustively on Imm's dynamic type instead of doing open dispatch
// (spec §9 "Polymorphic instruction and immediate trees").
type Instruction struct {
	Opcode uint32
	Imm    Immediate
	// Label is set only on structured-label openers (block/loop/if); it is
	// the identity pushed onto the emitter's scope stack, or nil for an
	// anonymous frame that still consumes a depth slot.
	Label *names.Name
}

// Immediate is implemented by every concrete immediate payload type.
type Immediate interface{ isImmediate() }

type ImmNone struct{}

func (ImmNone) isImmediate() {}

type ImmI32 struct{ Value int32 }
type ImmI64 struct{ Value int64 }
type ImmF32 struct{ Value float32 }
type ImmF64 struct{ Value float64 }

func (ImmI32) isImmediate() {}
func (ImmI64) isImmediate() {}
func (ImmF32) isImmediate() {}
func (ImmF64) isImmediate() {}

// ImmMemArg is the (offset, align) pair for load/store instructions.
type ImmMemArg struct{ Offset, Align uint32 }

func (ImmMemArg) isImmediate() {}

// BlockTypeKind discriminates ImmBlockType's three shapes.
type BlockTypeKind byte

const (
	BlockNone BlockTypeKind = iota
	BlockValue
	BlockFunc
)

// ImmBlockType is the block signature carried by block/loop/if.
type ImmBlockType struct {
	Kind  BlockTypeKind
	Value ValueType  // meaningful for BlockValue
	Func  names.Name // meaningful for BlockFunc: the function-type name
}

func (ImmBlockType) isImmediate() {}

type ImmFuncIdx struct{ Func names.Name }
type ImmTypeIdx struct{ Type names.Name }
type ImmGlobalIdx struct{ Global names.Name }
type ImmLocalIdx struct{ Local string } // resolved within the current LocalFrame

func (ImmFuncIdx) isImmediate()   {}
func (ImmTypeIdx) isImmediate()   {}
func (ImmGlobalIdx) isImmediate() {}
func (ImmLocalIdx) isImmediate()  {}

// ImmLabelIdx carries an opaque label identity; the emitter resolves it to
// a relative depth against its scope stack (spec §4.F).
type ImmLabelIdx struct{ Label names.Name }

func (ImmLabelIdx) isImmediate() {}

// ImmStructFieldIdx addresses one field of a declared struct type.
type ImmStructFieldIdx struct {
	Struct names.Name
	Field  string
}

func (ImmStructFieldIdx) isImmediate() {}

// ImmHeapType carries a heap type operand (ref.null, ref.cast, ...).
type ImmHeapType struct{ Heap HeapType }

func (ImmHeapType) isImmediate() {}

// ImmCastFlags is the nullable1/nullable2 bit pair for br_on_cast and
// br_on_cast_fail.
type ImmCastFlags struct{ Nullable1, Nullable2 bool }

func (ImmCastFlags) isImmediate() {}

// The remaining three immediate kinds are declared by spec §3/§4.F but
// deliberately unimplemented: any attempt to emit them is a fatal
// UnsupportedImmediate error (spec §7, §9).

type ImmLabelIdxVector struct{ Labels []names.Name }
type ImmTableIdx struct{ Idx uint32 }
type ImmTagIdx struct{ Idx uint32 }

func (ImmLabelIdxVector) isImmediate() {}
func (ImmTableIdx) isImmediate()       {}
func (ImmTagIdx) isImmediate()         {}
