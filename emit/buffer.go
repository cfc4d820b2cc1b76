// Package emit implements the binary emitter (spec component F): it
// serializes a fully populated module.Module into a Wasm core binary
// extended with the GC and typed-references proposals.
package emit

import (
	"bytes"
	"encoding/binary"
	"math"
)

// buffer is the growable byte buffer the emitter assembles section and
// function bodies into, grounded on the teacher's internal/binary.Writer
// and leb128.go primitives, extended with the GC-proposal encodings
// spec §4.F names: s33OfUInt, byteLengthSubSection, vec/opt.
type buffer struct {
	buf bytes.Buffer
}

func newBuffer() *buffer { return &buffer{} }

func (b *buffer) Bytes() []byte { return b.buf.Bytes() }
func (b *buffer) Len() int      { return b.buf.Len() }

// byte writes a single raw byte.
func (b *buffer) byte(v byte) { b.buf.WriteByte(v) }

// boolean writes 1 or 0.
func (b *buffer) boolean(v bool) {
	if v {
		b.byte(1)
	} else {
		b.byte(0)
	}
}

// rawBytes appends data verbatim.
func (b *buffer) rawBytes(data []byte) { b.buf.Write(data) }

// u32 writes v as an unsigned LEB128 value, widened through uint64 so a
// single loop body (the u64 encoder) serves both widths.
func (b *buffer) u32(v uint32) { b.u64(uint64(v)) }

func (b *buffer) u64(v uint64) {
	for {
		byt := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			byt |= 0x80
		}
		b.byte(byt)
		if v == 0 {
			return
		}
	}
}

// s32 writes v as a signed LEB128 value.
func (b *buffer) s32(v int32) { b.s64(int64(v)) }

// s64 writes v as a signed LEB128 value.
func (b *buffer) s64(v int64) {
	more := true
	for more {
		byt := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && byt&0x40 == 0) || (v == -1 && byt&0x40 != 0) {
			more = false
		} else {
			byt |= 0x80
		}
		b.byte(byt)
	}
}

// i32 / i64 are the instruction-immediate aliases of s32/s64 (spec §4.F:
// "I32 / I64 — signed LEB128").
func (b *buffer) i32(v int32) { b.s32(v) }
func (b *buffer) i64(v int64) { b.s64(v) }

// s33OfUInt writes the signed LEB128 encoding of the unsigned widening of
// a 32-bit value: widening to int64 before treating it as signed means
// bit 31 of v is never mistaken for the sign bit (spec §4.F).
func (b *buffer) s33OfUInt(v uint32) { b.s64(int64(v)) }

// f32 / f64 write IEEE 754 little-endian floats.
func (b *buffer) f32(v float32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	b.rawBytes(tmp[:])
}

func (b *buffer) f64(v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	b.rawBytes(tmp[:])
}

// name writes a UTF-8, length-prefixed string.
func (b *buffer) name(s string) {
	b.u32(uint32(len(s)))
	b.buf.WriteString(s)
}

// byteLengthSubSection emits f's output into a child buffer, then writes
// its length followed by its raw bytes (spec §4.F: every top-level
// section, and every Code-section function body, is framed this way).
func byteLengthSubSection(f func(*buffer)) []byte {
	child := newBuffer()
	f(child)

	out := newBuffer()
	out.u32(uint32(child.Len()))
	out.rawBytes(child.Bytes())
	return out.Bytes()
}

// vecEncode writes a u32 length followed by each element of xs encoded
// by f (spec §4.F's vec(xs, f)).
func vecEncode[T any](b *buffer, xs []T, f func(*buffer, T)) {
	b.u32(uint32(len(xs)))
	for _, x := range xs {
		f(b, x)
	}
}
