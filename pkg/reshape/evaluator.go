package reshape

import "github.com/graftlang/reshape/log"

// Evaluator runs one execute(input, config) call. It carries no mutable
// state across calls — spec.md §5: "no mutable state, no side effects,
// trivially reentrant." RunID is optional, set by callers (CLI/MCP) that
// want DEBUG/TRACE log lines correlated across a single invocation.
type Evaluator struct {
	RunID string
}

// NewEvaluator constructs a bare Evaluator.
func NewEvaluator() *Evaluator { return &Evaluator{} }

// Execute is the package's primary entry point (spec.md §6): a total,
// pure function from (input, config) to the assembled output document.
// Control flow: resolve root -> reduce pipeline -> resolve output
// template, all three stages sharing the path-engine primitives.
func Execute(input, config Value) Value {
	return NewEvaluator().Execute(input, config)
}

// Execute runs the three-stage pipeline described in spec.md §4.4.
func (ev *Evaluator) Execute(input, config Value) Value {
	cfg := configFields(config)
	root := input

	working := ev.resolveRoot(input, cfg)
	ev.logf("resolved root; working at $.%s", rootPathOf(cfg))

	working = ev.reducePipeline(working, cfg)

	template, hasTemplate := cfg["output"]
	return ResolveOutput(root, working, template, hasTemplate)
}

// configFields returns config's top-level keys, or an empty set if
// config is not itself an Obj (a malformed config degrades to "no root,
// no pipeline, no output" rather than raising).
func configFields(config Value) map[string]Value {
	if obj, ok := config.Object(); ok {
		return obj
	}
	return map[string]Value{}
}

func rootPathOf(cfg map[string]Value) string {
	rootCfg, ok := cfg["root"].Object()
	if !ok {
		return ""
	}
	if p, ok := rootCfg["path"].String(); ok {
		return p
	}
	return ""
}

// resolveRoot implements spec.md §4.4 step 1. A missing "root" key uses
// working = input outright. Otherwise working = get(input, root.path); if
// that is Null, on_null = "return_original" falls back to input, and
// anything else (including a missing on_null) falls back to an empty
// object.
func (ev *Evaluator) resolveRoot(input Value, cfg map[string]Value) Value {
	rootVal, hasRoot := cfg["root"]
	if !hasRoot {
		return input
	}
	rootCfg, _ := rootVal.Object()
	path := ""
	if p, ok := rootCfg["path"].String(); ok {
		path = p
	}
	working := GetPath(input, path)
	if !working.IsNull() {
		return working
	}
	if onNull, ok := rootCfg["on_null"].String(); ok && onNull == "return_original" {
		return input
	}
	return EmptyObj()
}

// reducePipeline implements spec.md §4.4 step 2: a left fold over the
// pipeline array. Anything that isn't a well-formed [ {op: ...}, ... ]
// array degrades to "no-op pipeline" rather than raising.
func (ev *Evaluator) reducePipeline(working Value, cfg map[string]Value) Value {
	pipelineVal, ok := cfg["pipeline"]
	if !ok {
		return working
	}
	steps, ok := pipelineVal.Array()
	if !ok {
		return working
	}
	for i, step := range steps {
		working = ev.applyStep(working, step, i)
	}
	return working
}

func (ev *Evaluator) applyStep(working, step Value, index int) Value {
	stepObj, ok := step.Object()
	if !ok {
		return working
	}
	kind, ok := stepObj["op"].String()
	if !ok {
		return working
	}
	ev.logf("step %d: running %q", index, kind)
	result := Dispatch(kind, working, step)
	ev.tracef("step %d: %q done", index, kind)
	return result
}

func (ev *Evaluator) logf(format string, args ...interface{}) {
	if ev.RunID != "" {
		log.DEBUG("[%s] "+format, append([]interface{}{ev.RunID}, args...)...)
		return
	}
	log.DEBUG(format, args...)
}

func (ev *Evaluator) tracef(format string, args ...interface{}) {
	if ev.RunID != "" {
		log.TRACE("[%s] "+format, append([]interface{}{ev.RunID}, args...)...)
		return
	}
	log.TRACE(format, args...)
}
