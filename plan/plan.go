// Package plan implements the vtable/itable planner (spec component E):
// deriving, per class, the ordered list of virtual methods with override
// merging, and the ordered list of implemented interfaces with their
// method lists, for use by the instruction selector and the binary
// emitter. Both tables are memoized per class, matching the teacher's
// linker-side caching style of computing a derived view once and
// reusing it for the remainder of the build phase.
package plan

import (
	"github.com/SethTisue/scala-wasm/classir"
	"github.com/SethTisue/scala-wasm/xerrors"
)

// vtableKey distinguishes the includeAbstract=true cache (used for the
// emitted vtable *type*) from the includeAbstract=false cache (used for
// the emitted vtable *instance*) without doubling the map set.
type vtableKey struct {
	class           string
	includeAbstract bool
}

// Planner computes and memoizes vtables and itables against a frozen
// LinkedClasses. It must not be constructed until preprocessing (pass 1
// and pass 2) has fully completed, per the phase-separation rule in
// spec §5 and §9.
type Planner struct {
	classes *classir.LinkedClasses

	vtables map[vtableKey][]*classir.FunctionInfo
	itables map[string][]*classir.ClassInfo
}

// New builds a Planner over classes. classes must be frozen: no further
// AppendMethod calls may occur once planning begins.
func New(classes *classir.LinkedClasses) *Planner {
	return &Planner{
		classes: classes,
		vtables: make(map[vtableKey][]*classir.FunctionInfo),
		itables: make(map[string][]*classir.ClassInfo),
	}
}

// VTableType returns the includeAbstract=true vtable for className: the
// type used to declare the vtable's Wasm struct type, where every slot
// must be typed even if no concrete body exists yet (spec §4.E
// calculateVtableType).
func (p *Planner) VTableType(className string) ([]*classir.FunctionInfo, error) {
	return p.vtable(className, true)
}

// GlobalVTable returns the includeAbstract=false vtable for className:
// the table used to populate the vtable's global *instance*, where
// every slot must carry a concrete function reference (spec §4.E
// calculateGlobalVTable).
func (p *Planner) GlobalVTable(className string) ([]*classir.FunctionInfo, error) {
	return p.vtable(className, false)
}

func (p *Planner) vtable(className string, includeAbstract bool) ([]*classir.FunctionInfo, error) {
	key := vtableKey{class: className, includeAbstract: includeAbstract}
	if cached, ok := p.vtables[key]; ok {
		return cached, nil
	}

	collected, err := p.collectMethods(className, includeAbstract)
	if err != nil {
		return nil, err
	}

	result := foldVTable(collected)
	p.vtables[key] = result
	return result, nil
}

// collectMethods implements spec §4.E's method-collection formula:
//
//	collect(C) = collect(super(C)) ++ flatMap(collect(I) for I in C.interfaces)
//	             ++ filter(C.methods, not abstract if !includeAbstract)
func (p *Planner) collectMethods(className string, includeAbstract bool) ([]*classir.FunctionInfo, error) {
	ci, ok := p.classes.Lookup(className)
	if !ok {
		return nil, xerrors.ClassNotFound(xerrors.PhasePlan, className)
	}

	var collected []*classir.FunctionInfo

	if ci.SuperClass != nil {
		superMethods, err := p.collectMethods(*ci.SuperClass, includeAbstract)
		if err != nil {
			return nil, err
		}
		collected = append(collected, superMethods...)
	}

	for _, iface := range ci.Interfaces {
		ifaceMethods, err := p.collectMethods(iface, includeAbstract)
		if err != nil {
			return nil, err
		}
		collected = append(collected, ifaceMethods...)
	}

	for _, m := range ci.Methods {
		if !includeAbstract && m.IsAbstract {
			continue
		}
		collected = append(collected, m)
	}

	return collected, nil
}

// foldVTable folds collected left-to-right: a method sharing an existing
// entry's bare method-name string replaces it in place, otherwise it is
// appended (spec §4.E VTable layout).
func foldVTable(collected []*classir.FunctionInfo) []*classir.FunctionInfo {
	result := make([]*classir.FunctionInfo, 0, len(collected))
	index := make(map[string]int, len(collected))

	for _, m := range collected {
		name := m.Name.MethodName
		if i, exists := index[name]; exists {
			result[i] = m
			continue
		}
		index[name] = len(result)
		result = append(result, m)
	}
	return result
}

// Itables returns the ordered, duplicate-preserving list of interfaces
// class className implements, per spec §4.E's collectInterfaces:
//
//	collectInterfaces(C) = collectInterfaces(super(C))
//	                       ++ flatMap(collectInterfaces(I) for I in C.interfaces)
//	                       ++ (if C is interface then [C] else [])
//
// Duplicates are load-bearing for last-wins method resolution and must
// never be deduplicated (spec §9).
func (p *Planner) Itables(className string) ([]*classir.ClassInfo, error) {
	if cached, ok := p.itables[className]; ok {
		return cached, nil
	}

	ci, ok := p.classes.Lookup(className)
	if !ok {
		return nil, xerrors.ClassNotFound(xerrors.PhasePlan, className)
	}

	var collected []*classir.ClassInfo

	if ci.SuperClass != nil {
		superItables, err := p.Itables(*ci.SuperClass)
		if err != nil {
			return nil, err
		}
		collected = append(collected, superItables...)
	}

	for _, iface := range ci.Interfaces {
		ifaceItables, err := p.Itables(iface)
		if err != nil {
			return nil, err
		}
		collected = append(collected, ifaceItables...)
	}

	if ci.Kind.IsInterface() {
		collected = append(collected, ci)
	}

	p.itables[className] = collected
	return collected, nil
}

// ResolveMethod finds the itable slot for methodName on className's
// itables vector under the last-wins policy (spec §4.E): scan from the
// end for the first interface whose methods contain methodName, also
// scanning that interface's methods from the end.
func (p *Planner) ResolveMethod(className, methodName string) (itableIdx, methodIdx int, err error) {
	itables, err := p.Itables(className)
	if err != nil {
		return 0, 0, err
	}

	for i := len(itables) - 1; i >= 0; i-- {
		methods := itables[i].Methods
		for j := len(methods) - 1; j >= 0; j-- {
			if methods[j].Name.MethodName == methodName {
				return i, j, nil
			}
		}
	}
	return 0, 0, xerrors.MethodNotFound(xerrors.PhasePlan, className, methodName)
}

// FieldIndex returns the struct field slot for fieldName on ci. Slot 0
// is always the vtable reference and slot 1 the itables reference, so
// user fields begin at index 2 in declaration order (spec §4.E).
func FieldIndex(ci *classir.ClassInfo, fieldName string) (int, error) {
	for i, f := range ci.Fields {
		if f.Name == fieldName {
			return i + 2, nil
		}
	}
	return 0, xerrors.FieldNotFound(xerrors.PhasePlan, ci.Name, fieldName)
}
