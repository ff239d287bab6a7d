package ops

import "github.com/graftlang/reshape/pkg/reshape"

// pruneValue recursively strips object entries and array elements that are
// Null, "", {}, or [] once their own children have already been pruned,
// per spec.md §4.2.
func pruneValue(v reshape.Value) reshape.Value {
	switch v.Kind() {
	case reshape.KindObject:
		obj, _ := v.Object()
		out := make(map[string]reshape.Value, len(obj))
		for k, child := range obj {
			pruned := pruneValue(child)
			if !pruned.IsEmptyValue() {
				out[k] = pruned
			}
		}
		return reshape.Obj(out)
	case reshape.KindArray:
		arr, _ := v.Array()
		out := make([]reshape.Value, 0, len(arr))
		for _, child := range arr {
			pruned := pruneValue(child)
			if !pruned.IsEmptyValue() {
				out = append(out, pruned)
			}
		}
		return reshape.Arr(out)
	default:
		return v
	}
}

// pruneOp implements `prune {strategy}`. Only "empty_values" is active;
// "null_values" and anything else leave working unchanged — spec.md §9
// notes this is documented but never implemented in the source, and this
// preserves that behavior rather than adding it.
func pruneOp(working, params reshape.Value) reshape.Value {
	strategy, ok := paramString(params, "strategy")
	if !ok || strategy != "empty_values" {
		return working
	}
	return pruneValue(working)
}

func init() {
	reshape.RegisterOp("prune", reshape.OperatorFunc(pruneOp))
}
