package classir

// FunctionName identifies a method by its declaring class and its own
// name (spec §3).
type FunctionName struct {
	ClassName  string
	MethodName string
}

// FunctionInfo describes one method. IsAbstract is true iff there is no
// body, including synthesized abstract slots the preprocessor's pass 2
// reinstates (spec §3, §4.D).
type FunctionInfo struct {
	Name       FunctionName
	ArgTypes   []TypeRef
	ResultType TypeRef
	IsAbstract bool
}

// MethodName is a convenience accessor for the bare method-name string
// vtable/itable layout compares on (spec §4.E: "same method-name string,
// ignoring class qualifier").
func (f *FunctionInfo) MethodName() string { return f.Name.MethodName }

// FieldInfo describes one instance field.
type FieldInfo struct {
	Name string
	Type TypeRef
}

// LoadSpec is the opaque JS native load descriptor attached to
// JSClass/HijackedClass members (spec §3); its internal shape belongs to
// the JS-interop lowering pass, out of scope here (spec §1) — this
// backend only threads it through untouched.
type LoadSpec struct {
	Module string
	Path   []string
}

// ClassInfo is the per-class record the preprocessor builds and the
// planner and context consume (spec §3). Methods is append-only after
// construction: pass 2 of the preprocessor may append synthetic abstract
// entries, but never removes or reorders existing ones.
type ClassInfo struct {
	Name       string
	Kind       ClassKind
	Methods    []*FunctionInfo
	Fields     []FieldInfo
	SuperClass *string
	Interfaces []string
	Ancestors  []string

	JSNativeLoadSpec *LoadSpec
	JSNativeMembers  map[string]LoadSpec

	// Bodies maps a non-constructor method name to its IR body, and
	// TopLevelExports holds the JS-facing export-thunk trees. Both are
	// walked by preprocessor pass 2 (spec §4.D).
	Bodies          map[string]Tree
	TopLevelExports []Tree
}

// MethodNamed returns the method with the given bare name, if C already
// declares one (spec §4.D pass 2: "if C does not already declare a
// method with the referenced name string").
func (c *ClassInfo) MethodNamed(name string) (*FunctionInfo, bool) {
	for _, m := range c.Methods {
		if m.Name.MethodName == name {
			return m, true
		}
	}
	return nil, false
}

// AppendMethod appends m to c.Methods. Ordering is append-only and stable
// once assigned (spec §3 ClassInfo invariant).
func (c *ClassInfo) AppendMethod(m *FunctionInfo) {
	c.Methods = append(c.Methods, m)
}
