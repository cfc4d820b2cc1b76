// Package xerrors is the structured error type shared by every stage of
// the backend pipeline: preprocessing, planning, context assembly, and
// binary emission. All errors it describes are programmer errors — a
// malformed or internally inconsistent input — and are never retried.
package xerrors

import (
	"fmt"
	"strings"
)

// Phase identifies which pipeline stage raised the error.
type Phase string

const (
	PhasePreprocess Phase = "preprocess"
	PhasePlan       Phase = "plan"
	PhaseContext    Phase = "context"
	PhaseEmit       Phase = "emit"
)

// Kind enumerates the error kinds from spec §7. Exactly these eight exist;
// nothing else in the pipeline fails.
type Kind string

const (
	KindClassNotFound        Kind = "class_not_found"
	KindMethodNotFound       Kind = "method_not_found"
	KindFieldNotFound        Kind = "field_not_found"
	KindLabelOutOfScope      Kind = "label_out_of_scope"
	KindLocalsUnavailable    Kind = "locals_unavailable"
	KindOpcodeTooWide        Kind = "opcode_too_wide"
	KindCyclicSubtype        Kind = "cyclic_subtype"
	KindUnsupportedImmediate Kind = "unsupported_immediate"
)

// Error is the structured error type used throughout the backend.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Entity string // name of the offending class/method/field/label
	Detail string
	Path   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Entity != "" {
		b.WriteString(": ")
		b.WriteString(e.Entity)
	}

	if e.Detail != "" {
		if e.Entity != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same phase and kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New starts building an error for the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

func (b *Builder) Entity(name string) *Builder {
	b.err.Entity = name
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors, one per spec §7 error kind.

func ClassNotFound(phase Phase, name string) *Error {
	return New(phase, KindClassNotFound).Entity(name).Detail("class %q not found", name).Build()
}

func MethodNotFound(phase Phase, class, method string) *Error {
	return New(phase, KindMethodNotFound).Entity(class + "." + method).
		Detail("method %q not found on %q", method, class).Build()
}

func FieldNotFound(phase Phase, class, field string) *Error {
	return New(phase, KindFieldNotFound).Entity(class + "." + field).
		Detail("field %q not found on %q", field, class).Build()
}

func LabelOutOfScope(label string) *Error {
	return New(PhaseEmit, KindLabelOutOfScope).Entity(label).
		Detail("label %q is not open on the structured-control-flow scope stack", label).Build()
}

func LocalsUnavailable(idx uint32) *Error {
	return New(PhaseEmit, KindLocalsUnavailable).
		Detail("local index %d requested outside any function-body frame", idx).Build()
}

func OpcodeTooWide(opcode uint32) *Error {
	return New(PhaseEmit, KindOpcodeTooWide).
		Detail("opcode 0x%X exceeds the 2-byte (0xFFFF) limit", opcode).Build()
}

func CyclicSubtype(remaining []string) *Error {
	return New(PhaseEmit, KindCyclicSubtype).
		Detail("subtype relation has a cycle among: %s", strings.Join(remaining, ", ")).Build()
}

func UnsupportedImmediate(kind string) *Error {
	return New(PhaseEmit, KindUnsupportedImmediate).
		Detail("immediate kind %q is declared but not implemented by this emitter", kind).Build()
}
