package preprocess

import (
	"github.com/SethTisue/scala-wasm/classir"
	"github.com/SethTisue/scala-wasm/xerrors"
)

// Pass2 walks every method body and every top-level export of every class,
// looking for Apply nodes whose receiver's static type names a class that
// does not (yet) declare the method being called. That happens when the
// upstream linker erases a method declaration — typically an abstract method
// reachable only through a subclass override — while still emitting call
// sites against the abstract receiver type. Pass 2 reinstates the missing
// slot so the vtable/itable planner (spec component E) sees the full
// method set of every class in the hierarchy, not just the ones with
// surviving bodies (spec §4.D).
//
// Pass2 is idempotent: a class that already has the recovered method
// (from a previous run, or because pass 1 already found it) is left
// untouched.
func Pass2(lc *classir.LinkedClasses) error {
	recovered := 0
	for _, ci := range lc.All() {
		for _, body := range ci.Bodies {
			n, err := recoverAbstractSlots(lc, body)
			if err != nil {
				return err
			}
			recovered += n
		}
		for _, export := range ci.TopLevelExports {
			n, err := recoverAbstractSlots(lc, export)
			if err != nil {
				return err
			}
			recovered += n
		}
	}
	Logger().Sugar().Debugf("pass2: recovered %d abstract method slots", recovered)
	return nil
}

func recoverAbstractSlots(lc *classir.LinkedClasses, body classir.Tree) (int, error) {
	var walkErr error
	recovered := 0
	classir.Walk(body, func(node classir.Tree) {
		if walkErr != nil {
			return
		}
		if node.Kind != classir.TreeApply || node.ReceiverType.Kind != classir.RefClass {
			return
		}
		className := node.ReceiverType.ClassName
		target, ok := lc.Lookup(className)
		if !ok {
			walkErr = xerrors.ClassNotFound(xerrors.PhasePreprocess, className)
			return
		}
		if _, found := target.MethodNamed(node.MethodName); found {
			return
		}
		target.AppendMethod(&classir.FunctionInfo{
			Name: classir.FunctionName{
				ClassName:  className,
				MethodName: node.MethodName,
			},
			ArgTypes:   node.MethodArgTypes,
			ResultType: node.MethodResultType,
			IsAbstract: true,
		})
		recovered++
	})
	return recovered, walkErr
}
