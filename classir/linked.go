package classir

// LinkedClasses is the collection an upstream linker hands the backend
// (spec §6): a flat set of already-resolved classes, addressable by name.
type LinkedClasses struct {
	byName map[string]*ClassInfo
	order  []*ClassInfo
}

// NewLinkedClasses builds a LinkedClasses collection from classes,
// preserving their given order for anything that iterates All().
func NewLinkedClasses(classes []*ClassInfo) *LinkedClasses {
	lc := &LinkedClasses{byName: make(map[string]*ClassInfo, len(classes))}
	for _, c := range classes {
		lc.byName[c.Name] = c
		lc.order = append(lc.order, c)
	}
	return lc
}

// Lookup returns the class named name, if present.
func (lc *LinkedClasses) Lookup(name string) (*ClassInfo, bool) {
	c, ok := lc.byName[name]
	return c, ok
}

// All returns every class, in the order supplied to NewLinkedClasses.
func (lc *LinkedClasses) All() []*ClassInfo {
	return append([]*ClassInfo(nil), lc.order...)
}

// ModuleInitializerKind discriminates the two module-initializer shapes
// (spec §6).
type ModuleInitializerKind byte

const (
	VoidMainMethod ModuleInitializerKind = iota
	MainMethodWithArgs
)

// ModuleInitializer is one entry of the driver-supplied initializer list.
// MainMethodWithArgs is recognized but its Args are never consulted by
// this backend (spec §4.C step 2, §9): argv plumbing is a deliberately
// unimplemented follow-up.
type ModuleInitializer struct {
	Kind       ModuleInitializerKind
	ClassName  string
	MethodName string
	Args       []TypeRef // meaningful only for MainMethodWithArgs; ignored
}
