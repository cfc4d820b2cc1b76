package wasmtype

// Opcodes this backend's emitter understands. Opcodes are either a single
// byte, or a prefix byte followed by a LEB128 sub-opcode (spec §4.F);
// GC opcodes (0xFB prefix) are folded into a dense uint32 space the same
// way the sub-opcode table does for every other multi-byte Wasm encoding.
const (
	OpUnreachable byte = 0x00
	OpNop         byte = 0x01
	OpBlock       byte = 0x02
	OpLoop        byte = 0x03
	OpIf          byte = 0x04
	OpElse        byte = 0x05
	OpEnd         byte = 0x0B
	OpBr          byte = 0x0C
	OpBrIf        byte = 0x0D
	OpBrTable     byte = 0x0E
	OpReturn      byte = 0x0F
	OpCall        byte = 0x10
	OpCallRef     byte = 0x14

	OpDrop   byte = 0x1A
	OpSelect byte = 0x1B

	OpLocalGet  byte = 0x20
	OpLocalSet  byte = 0x21
	OpLocalTee  byte = 0x22
	OpGlobalGet byte = 0x23
	OpGlobalSet byte = 0x24

	OpI32Const byte = 0x41
	OpI64Const byte = 0x42
	OpF32Const byte = 0x43
	OpF64Const byte = 0x44

	OpI32Eqz byte = 0x45
	OpI32Eq  byte = 0x46
	OpI32Ne  byte = 0x47
	OpI32LtS byte = 0x48
	OpI32GtS byte = 0x4A
	OpI32LeS byte = 0x4C
	OpI32GeS byte = 0x4E

	OpI32Add byte = 0x6A
	OpI32Sub byte = 0x6B
	OpI32Mul byte = 0x6C

	OpI64Add byte = 0x7C
	OpF64Add byte = 0xA0

	OpRefNull      byte = 0xD0
	OpRefIsNull    byte = 0xD1
	OpRefFunc      byte = 0xD2
	OpRefAsNonNull byte = 0xD4
	OpRefEq        byte = 0xD3
)

// OpPrefixGC is the 0xFB prefix byte that introduces every GC struct/array/
// cast instruction; its sub-opcode is a separate LEB128 u32 (spec §4.F),
// so the emitter widens it into a >0xFF two-"byte" opcode by shifting the
// prefix into the high byte, matching the 2-byte-opcode case of the
// "emit the opcode" rule.
const OpPrefixGC byte = 0xFB

// GC sub-opcodes (immediately following OpPrefixGC).
const (
	GCStructNew        uint32 = 0x00
	GCStructNewDefault uint32 = 0x01
	GCStructGet        uint32 = 0x02
	GCStructGetS       uint32 = 0x03
	GCStructGetU       uint32 = 0x04
	GCStructSet        uint32 = 0x05
	GCArrayNew         uint32 = 0x06
	GCArrayNewDefault  uint32 = 0x07
	GCArrayNewFixed    uint32 = 0x08
	GCArrayGet         uint32 = 0x0B
	GCArraySet         uint32 = 0x0E
	GCArrayLen         uint32 = 0x0F
	GCRefTest          uint32 = 0x14
	GCRefTestNull      uint32 = 0x15
	GCRefCast          uint32 = 0x16
	GCRefCastNull      uint32 = 0x17
	GCBrOnCast         uint32 = 0x18
	GCBrOnCastFail     uint32 = 0x19
	GCRefI31           uint32 = 0x1C
	GCI31GetS          uint32 = 0x1D
	GCI31GetU          uint32 = 0x1E
)

// GCOpcode widens a GC sub-opcode into the dense 2-byte opcode space this
// emitter's Instruction.Opcode field uses, so that "opcode <= 0xff => one
// byte, else two bytes" falls naturally out of the general rule (spec
// §4.F) instead of needing a GC-specific branch at encode time.
func GCOpcode(sub uint32) uint32 {
	return uint32(OpPrefixGC)<<8 | sub
}

// Type-byte discriminators (spec §4.F "type-byte encoding").
const (
	ByteI32      byte = 0x7F
	ByteI64      byte = 0x7E
	ByteF32      byte = 0x7D
	ByteF64      byte = 0x7C
	ByteRef      byte = 0x64
	ByteRefNull  byte = 0x63
	ByteFuncType byte = 0x60
	ByteArrType  byte = 0x5E
	ByteStruct   byte = 0x5F
	ByteSub      byte = 0x50
	ByteSubFinal byte = 0x4F
	ByteRecType  byte = 0x4E
	ByteBlockVoid byte = 0x40
)

// Simple abstract heap-type bytes/negative-s33 encodings (spec §4.F).
const (
	HeapByteFunc     byte = 0x70
	HeapByteExtern   byte = 0x6F
	HeapByteAny      byte = 0x6E
	HeapByteEq       byte = 0x6D
	HeapByteI31      byte = 0x6C
	HeapByteStruct   byte = 0x6B
	HeapByteArray    byte = 0x6A
	HeapByteNone     byte = 0x71
	HeapByteNoExtern byte = 0x72
	HeapByteNoFunc   byte = 0x73
)

// heapByte returns the single-byte encoding of a simple heap type, used
// both standalone and as the negative s33 value in the general encoding.
func heapByte(s SimpleHeap) byte {
	switch s {
	case HeapFunc:
		return HeapByteFunc
	case HeapExtern:
		return HeapByteExtern
	case HeapAny:
		return HeapByteAny
	case HeapEq:
		return HeapByteEq
	case HeapI31:
		return HeapByteI31
	case HeapStructRef:
		return HeapByteStruct
	case HeapArrayRef:
		return HeapByteArray
	case HeapNone:
		return HeapByteNone
	case HeapNoExtern:
		return HeapByteNoExtern
	case HeapNoFunc:
		return HeapByteNoFunc
	default:
		return HeapByteAny
	}
}

// HeapByte exposes heapByte to sibling packages (the emitter).
func HeapByte(s SimpleHeap) byte { return heapByte(s) }
