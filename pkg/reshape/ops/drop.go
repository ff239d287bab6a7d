package ops

import "github.com/graftlang/reshape/pkg/reshape"

// dropOp implements `drop {paths: [str]}` — spec.md §4.2: apply delete for
// each path in order. A malformed (non-array) "paths" param is identity.
func dropOp(working, params reshape.Value) reshape.Value {
	paths, ok := paramArray(params, "paths")
	if !ok {
		return working
	}
	for _, p := range paths {
		path, ok := p.String()
		if !ok {
			continue
		}
		working = reshape.DeletePath(working, path)
	}
	return working
}

func init() {
	reshape.RegisterOp("drop", reshape.OperatorFunc(dropOp))
}
