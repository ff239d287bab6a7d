package ops

import (
	"strings"

	"github.com/graftlang/reshape/pkg/reshape"
)

const pathSigilPrefix = "$path:"

// asPathSigil reports whether v is a string of the form "$path:source",
// returning the source path.
func asPathSigil(v reshape.Value) (string, bool) {
	s, ok := v.String()
	if !ok || !strings.HasPrefix(s, pathSigilPrefix) {
		return "", false
	}
	return strings.TrimPrefix(s, pathSigilPrefix), true
}

// setOp implements `set {path, value}`, per spec.md §4.2. A `$path:`-
// prefixed value resolves through a source path, using the same
// array-aligned-vs-broadcast rule as `copy`; any other value is a literal
// written with Put, which already broadcasts across a wildcard-bearing
// target path.
func setOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	value := paramValue(params, "value")
	if source, isPathRef := asPathSigil(value); isPathRef {
		return transferPath(working, source, path)
	}
	return reshape.PutPath(working, path, value)
}

func init() {
	reshape.RegisterOp("set", reshape.OperatorFunc(setOp))
}
