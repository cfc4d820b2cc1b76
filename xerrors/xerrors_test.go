package xerrors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEmit,
				Kind:   KindLabelOutOfScope,
				Path:   []string{"MyClass", "foo"},
				Entity: "$done",
				Detail: "not open",
			},
			contains: []string{"[emit]", "label_out_of_scope", "MyClass.foo", "$done", "not open"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhasePlan,
				Kind:  KindMethodNotFound,
			},
			contains: []string{"[plan]", "method_not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhasePreprocess,
				Kind:   KindClassNotFound,
				Detail: "during slot recovery",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[preprocess]", "class_not_found", "during slot recovery", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{Phase: PhaseEmit, Kind: KindOpcodeTooWide, Cause: cause}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Phase: PhaseEmit, Kind: KindLabelOutOfScope}
	same := &Error{Phase: PhaseEmit, Kind: KindLabelOutOfScope, Entity: "different"}
	other := &Error{Phase: PhaseEmit, Kind: KindCyclicSubtype}

	if !errors.Is(err, same) {
		t.Error("expected Is to match same phase/kind regardless of detail")
	}
	if errors.Is(err, other) {
		t.Error("expected Is to reject different kind")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if got := ClassNotFound(PhasePreprocess, "Foo").Kind; got != KindClassNotFound {
		t.Errorf("ClassNotFound kind = %v", got)
	}
	if got := MethodNotFound(PhasePlan, "Foo", "bar"); got.Kind != KindMethodNotFound || !strings.Contains(got.Error(), "Foo.bar") {
		t.Errorf("MethodNotFound = %v", got)
	}
	if got := FieldNotFound(PhasePlan, "Foo", "x"); got.Kind != KindFieldNotFound {
		t.Errorf("FieldNotFound kind = %v", got)
	}
	if got := LabelOutOfScope("$loop").Kind; got != KindLabelOutOfScope {
		t.Errorf("LabelOutOfScope kind = %v", got)
	}
	if got := LocalsUnavailable(3).Kind; got != KindLocalsUnavailable {
		t.Errorf("LocalsUnavailable kind = %v", got)
	}
	if got := OpcodeTooWide(0x10000).Kind; got != KindOpcodeTooWide {
		t.Errorf("OpcodeTooWide kind = %v", got)
	}
	if got := CyclicSubtype([]string{"A", "B"}).Kind; got != KindCyclicSubtype {
		t.Errorf("CyclicSubtype kind = %v", got)
	}
	if got := UnsupportedImmediate("TableIdx").Kind; got != KindUnsupportedImmediate {
		t.Errorf("UnsupportedImmediate kind = %v", got)
	}
}
