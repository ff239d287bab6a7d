package reshape

import "fmt"

// Operator is a pure Value×Params→Value handler for one operator kind
// (spec.md §4.2). Implementations must never panic on malformed params —
// but Dispatch recovers anyway, in case one does, converting any panic
// into identity-on-that-step per the error policy in spec.md §7.
type Operator interface {
	Run(working Value, params Value) Value
}

// OperatorFunc adapts a plain function to the Operator interface.
type OperatorFunc func(working Value, params Value) Value

// Run implements Operator.
func (f OperatorFunc) Run(working Value, params Value) Value { return f(working, params) }

// OpRegistry maps operator kind tags ("drop", "rename", ...) to their
// handler, grounded on the teacher's package-level OpRegistry
// (pkg/graft/api.go) and RegisterOp (pkg/graft/operators/operator.go).
// Operator packages register themselves via init().
var OpRegistry = make(map[string]Operator)

// RegisterOp adds an operator to OpRegistry. Call from an init() in the
// operator's defining file, one operator per file, matching the
// teacher's op_*.go convention.
func RegisterOp(name string, op Operator) {
	OpRegistry[name] = op
}

// OperatorFor looks up an operator by kind tag.
func OperatorFor(name string) (Operator, bool) {
	op, ok := OpRegistry[name]
	return op, ok
}

// Dispatch runs the operator named by kind against working/params. An
// unknown kind, or a handler that panics, both degrade to identity
// (working returned unchanged) per spec.md §4.4 and §7 — no operation may
// raise past the evaluator boundary.
func Dispatch(kind string, working Value, params Value) (result Value) {
	op, ok := OperatorFor(kind)
	if !ok {
		return working
	}
	result = working
	defer func() {
		if r := recover(); r != nil {
			stepWarning(kind, "", NewOperatorError(kind, "", fmt.Sprintf("panic: %v", r)))
			result = working
		}
	}()
	return op.Run(working, params)
}
