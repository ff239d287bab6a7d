package ops

import "github.com/graftlang/reshape/pkg/reshape"

// truncateListOp implements `truncate_list {path, max_size, shape}`, per
// spec.md §4.2. max_size is accepted but, per spec.md §9, is advisory: the
// actual output shape comes entirely from resolving `shape`'s sigils
// ($length, $slice, $map_slice) against the source array. The array at
// path is replaced by the resolved Obj; path routes through UpdatePath so
// a wildcard segment resolves the shape against each matched array
// independently rather than lifting them all into one outer Arr.
func truncateListOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	if _, ok := paramInt(params, "max_size"); !ok {
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
			out[k] = resolveShapeLeaf(items, leaf)
		}
		return reshape.Obj(out)
	})
}

func init() {
	reshape.RegisterOp("truncate_list", reshape.OperatorFunc(truncateListOp))
}
