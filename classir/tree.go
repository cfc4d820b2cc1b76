package classir

// TreeKind is the closed set of IR tree shapes this backend's preprocessor
// walks. Only Apply is load-bearing for spec §4.D pass 2, but a walker
// over a single-node type would not honestly exercise "every method body
// and every exported member tree" — Block/If/Literal/VarRef/Select give
// pass 2 real structure to recurse through.
type TreeKind byte

const (
	TreeApply TreeKind = iota
	TreeBlock
	TreeIf
	TreeLiteral
	TreeVarRef
	TreeSelect
)

// Tree is a node in a method body or exported-member body.
type Tree struct {
	Kind TreeKind

	// Apply: a virtual call `receiver.methodName(args...)`. MethodArgTypes
	// and MethodResultType carry the called method's parameter and result
	// type references, the way a JVM-style method descriptor does, so pass
	// 2 can recover a slot's signature purely from the call site (spec §4.D).
	Receiver         *Tree
	ReceiverType     TypeRef
	MethodName       string
	MethodArgTypes   []TypeRef
	MethodResultType TypeRef
	Args             []Tree

	// Block: a sequence of statements.
	Stmts []Tree

	// If: cond ? then : else.
	Cond *Tree
	Then *Tree
	Else *Tree

	// VarRef / Select: a local or field reference by name.
	Name string
}

// Apply builds an Apply node whose receiver has static type recvType.
// argTypes and resultType are the method-name's own encoded signature
// (spec §4.D pass 2 recovers an abstract slot's type purely from these,
// the way a JVM-style method descriptor would let it).
func Apply(receiver Tree, recvType TypeRef, methodName string, argTypes []TypeRef, resultType TypeRef, args ...Tree) Tree {
	r := receiver
	return Tree{
		Kind:             TreeApply,
		Receiver:         &r,
		ReceiverType:     recvType,
		MethodName:       methodName,
		MethodArgTypes:   argTypes,
		MethodResultType: resultType,
		Args:             args,
	}
}

// Block builds a Block node.
func Block(stmts ...Tree) Tree { return Tree{Kind: TreeBlock, Stmts: stmts} }

// If builds an If node.
func If(cond, then, els Tree) Tree {
	return Tree{Kind: TreeIf, Cond: &cond, Then: &then, Else: &els}
}

// Literal builds a Literal node (its value is not needed by this backend).
func Literal() Tree { return Tree{Kind: TreeLiteral} }

// VarRef builds a VarRef node.
func VarRef(name string) Tree { return Tree{Kind: TreeVarRef, Name: name} }

// Select builds a field-select node.
func Select(receiver Tree, field string) Tree {
	r := receiver
	return Tree{Kind: TreeSelect, Receiver: &r, Name: field}
}

// Walk visits t and every descendant, calling visit on each node
// (pre-order). Used by the preprocessor's abstract-method recovery pass
// (spec §4.D pass 2) to find every Apply node in a body.
func Walk(t Tree, visit func(Tree)) {
	visit(t)
	if t.Receiver != nil {
		Walk(*t.Receiver, visit)
	}
	for _, s := range t.Stmts {
		Walk(s, visit)
	}
	if t.Cond != nil {
		Walk(*t.Cond, visit)
	}
	if t.Then != nil {
		Walk(*t.Then, visit)
	}
	if t.Else != nil {
		Walk(*t.Else, visit)
	}
	for _, a := range t.Args {
		Walk(a, visit)
	}
}
