// Package preprocess implements the class-hierarchy preprocessor (spec
// component D): pass 1 builds per-class info from the linker's raw
// classes, and pass 2 walks method bodies to reinstate the abstract
// method slots the linker erased.
package preprocess

import "github.com/SethTisue/scala-wasm/classir"

// Pass1 builds a ClassInfo for every raw class. Constructors are excluded
// from Methods because they are never virtually dispatched (spec §4.D).
func Pass1(raw []classir.RawClass) *classir.LinkedClasses {
	classes := make([]*classir.ClassInfo, 0, len(raw))
	for _, rc := range raw {
		classes = append(classes, pass1Class(rc))
	}
	Logger().Sugar().Debugf("pass1: built %d class infos", len(classes))
	return classir.NewLinkedClasses(classes)
}

func pass1Class(rc classir.RawClass) *classir.ClassInfo {
	ci := &classir.ClassInfo{
		Name:             rc.Name,
		Kind:             rc.Kind,
		SuperClass:       rc.SuperClass,
		Interfaces:       rc.Interfaces,
		Ancestors:        rc.Ancestors,
		JSNativeLoadSpec: rc.JSNativeLoadSpec,
		JSNativeMembers:  rc.JSNativeMembers,
		Fields:           rc.Fields,
		Bodies:           make(map[string]classir.Tree),
		TopLevelExports:  rc.Exports,
	}

	for _, m := range rc.Methods {
		if m.Namespace == classir.NamespaceConstructor {
			continue
		}
		argTypes := make([]classir.TypeRef, len(m.Args))
		for i, a := range m.Args {
			argTypes[i] = a.Type
		}
		ci.AppendMethod(&classir.FunctionInfo{
			Name:       classir.FunctionName{ClassName: rc.Name, MethodName: m.Name},
			ArgTypes:   argTypes,
			ResultType: m.ResultType,
			IsAbstract: m.Body == nil,
		})
		if m.Body != nil {
			ci.Bodies[m.Name] = *m.Body
		}
	}
	return ci
}
