package ops

import "github.com/graftlang/reshape/pkg/reshape"

// copyOp implements `copy {from, to}`, per spec.md §4.2.
func copyOp(working, params reshape.Value) reshape.Value {
	from, ok := paramString(params, "from")
	if !ok {
		return working
	}
	to, ok := paramString(params, "to")
	if !ok {
		return working
	}
	return transferPath(working, from, to)
}

// moveOp implements `move {from, to}`: copy, then delete from. A missing
// source copies Null to the destination and leaves nothing to delete.
func moveOp(working, params reshape.Value) reshape.Value {
	from, ok := paramString(params, "from")
	if !ok {
		return working
	}
	working = copyOp(working, params)
	return reshape.DeletePath(working, from)
}

func init() {
	reshape.RegisterOp("copy", reshape.OperatorFunc(copyOp))
	reshape.RegisterOp("move", reshape.OperatorFunc(moveOp))
}
