package classir

// MethodNamespace groups a method the way the upstream linker tags it —
// this backend only needs to tell constructors apart from everything
// else, since constructors never participate in virtual dispatch (spec
// §4.D pass 1).
type MethodNamespace byte

const (
	NamespacePublic MethodNamespace = iota
	NamespacePrivate
	NamespaceStatic
	NamespaceConstructor
)

// Param is one (name, type) entry of a method's parameter list.
type Param struct {
	Name string
	Type TypeRef
}

// RawMethod is a method definition exactly as the linker exposes it (spec
// §6): namespace, name, args, result type, and an optional body. A nil
// Body means the method is abstract.
type RawMethod struct {
	Namespace  MethodNamespace
	Name       string
	Args       []Param
	ResultType TypeRef
	Body       *Tree
}

// RawClass is a linked class exactly as the linker exposes it (spec §6),
// before preprocessing has built the backend's own ClassInfo view of it.
type RawClass struct {
	Name       string
	Kind       ClassKind
	Methods    []RawMethod
	Fields     []FieldInfo
	SuperClass *string
	Interfaces []string
	Ancestors  []string

	JSNativeLoadSpec *LoadSpec
	JSNativeMembers  map[string]LoadSpec

	Exports []Tree
}
