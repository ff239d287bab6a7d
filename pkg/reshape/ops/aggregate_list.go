package ops

import "github.com/graftlang/reshape/pkg/reshape"

// lessValue orders two like-kinded Values: numbers by natural ordering,
// strings lexicographically. Values of differing or uncomparable kinds
// never compare less than one another.
func lessValue(a, b reshape.Value) bool {
	if an, ok := a.Number(); ok {
		if bn, ok := b.Number(); ok {
			return an < bn
		}
		return false
	}
	if as, ok := a.String(); ok {
		if bs, ok := b.String(); ok {
			return as < bs
		}
		return false
	}
	return false
}

// extremeOf finds the min or max of values, which is expected to already
// have Null entries filtered out. Empty input yields Null, per spec.md
// §4.2's `aggregate_list`.
func extremeOf(values []reshape.Value, wantMax bool) reshape.Value {
	if len(values) == 0 {
		return reshape.Null()
	}
	best := values[0]
	for _, v := range values[1:] {
		if wantMax && lessValue(best, v) {
			best = v
		}
		if !wantMax && lessValue(v, best) {
			best = v
		}
	}
	return best
}

// collectPath reads path out of every item, skipping Null results.
func collectPath(items []reshape.Value, path string) []reshape.Value {
	out := make([]reshape.Value, 0, len(items))
	for _, item := range items {
		v := reshape.GetPath(item, path)
		if !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}

// resolveAggregateLeaf resolves one leaf of an aggregate_list `shape`
// template: $min(path) and $max(path) are the recognized sigils; anything
// else is literal. Objects recurse leaf by leaf.
func resolveAggregateLeaf(items []reshape.Value, leaf reshape.Value) reshape.Value {
	if obj, ok := leaf.Object(); ok {
		out := make(map[string]reshape.Value, len(obj))
		for k, v := range obj {
			out[k] = resolveAggregateLeaf(items, v)
		}
		return reshape.Obj(out)
	}
	s, ok := leaf.String()
	if !ok {
		return leaf
	}
	if args, ok := sigilArgs(s, "$min"); ok && len(args) == 1 {
		return extremeOf(collectPath(items, args[0]), false)
	}
	if args, ok := sigilArgs(s, "$max"); ok && len(args) == 1 {
		return extremeOf(collectPath(items, args[0]), true)
	}
	return leaf
}

// aggregateListOp implements `aggregate_list {path, shape}`. path routes
// through UpdatePath so a wildcard segment aggregates each matched array
// independently rather than lifting them all into one outer Arr.
func aggregateListOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	shapeObj, ok := paramObject(params, "shape")
	if !ok {
		return working
	}
	return reshape.UpdatePath(working, path, func(v reshape.Value) reshape.Value {
		items, ok := v.Array()
		if !ok {
			return v
		}
		out := make(map[string]reshape.Value, len(shapeObj))
		for k, leaf := range shapeObj {
			out[k] = resolveAggregateLeaf(items, leaf)
		}
		return reshape.Obj(out)
	})
}

func init() {
	reshape.RegisterOp("aggregate_list", reshape.OperatorFunc(aggregateListOp))
}
