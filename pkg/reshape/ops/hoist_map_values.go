package ops

import "github.com/graftlang/reshape/pkg/reshape"

// hoistMapValuesOp implements `hoist_map_values {path, child_key,
// replace_parent}`, per spec.md §4.2. At path, P is the object found there
// and C is P[child_key]. When replace_parent is true the result is
// (P minus child_key) shallow-merged with C, C's keys winning on conflict.
// When false this is a documented no-op: spec.md §9 notes the source never
// actually performs the merge in that branch, and this preserves that
// behavior rather than "fixing" it.
func hoistMapValuesOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	childKey, ok := paramString(params, "child_key")
	if !ok {
		return working
	}
	if !paramBoolDefault(params, "replace_parent", false) {
		return working
	}

	parent := reshape.GetPath(working, path)
	parentObj, ok := parent.Object()
	if !ok {
		return working
	}
	child, ok := parentObj[childKey]
	if !ok {
		return working
	}
	childObj, ok := child.Object()
	if !ok {
		return working
	}

	merged := make(map[string]reshape.Value, len(parentObj)+len(childObj))
	for k, v := range parentObj {
		if k == childKey {
			continue
		}
		merged[k] = v
	}
	for k, v := range childObj {
		merged[k] = v
	}
	return reshape.PutPath(working, path, reshape.Obj(merged))
}

func init() {
	reshape.RegisterOp("hoist_map_values", reshape.OperatorFunc(hoistMapValuesOp))
}
