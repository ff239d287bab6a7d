package ops

import (
	"sort"

	"github.com/graftlang/reshape/pkg/reshape"
)

// sortedObjKeys returns m's keys sorted, so operators that fold over a
// mapping Obj apply their pairs in a deterministic order rather than Go's
// randomized map iteration order.
func sortedObjKeys(m map[string]reshape.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// segmentsEqual reports whether two path segments are the same wildcard
// marker, or the same field name.
func segmentsEqual(a, b reshape.Segment) bool {
	if a.IsWildcard() != b.IsWildcard() {
		return false
	}
	if a.IsWildcard() {
		return true
	}
	return a.FieldName() == b.FieldName()
}

// splitCommonPrefix finds the longest shared leading run of segments
// between a and b, returning that prefix and each path's own remaining
// suffix.
func splitCommonPrefix(a, b reshape.Path) (common, aSuffix, bSuffix reshape.Path) {
	i := 0
	for i < len(a) && i < len(b) && segmentsEqual(a[i], b[i]) {
		i++
	}
	return a[:i], a[i:], b[i:]
}

// renamePair implements one `from -> to` pair of `rename`, per spec.md
// §4.2: find the common path prefix, then at the first divergence read the
// value at from's suffix, write it at to's suffix, and delete from's
// suffix. Using reshape.Update to walk the common prefix makes a
// wildcard-bearing prefix broadcast pointwise for free; a suffix shape
// mismatch degrades to a no-op through Get/Put/Delete's own rules.
func renamePair(working reshape.Value, from, to string) reshape.Value {
	fromPath := reshape.ParsePath(from)
	toPath := reshape.ParsePath(to)
	common, fromSuffix, toSuffix := splitCommonPrefix(fromPath, toPath)
	return reshape.Update(working, common, func(sub reshape.Value) reshape.Value {
		val := reshape.Get(sub, fromSuffix)
		sub = reshape.Put(sub, toSuffix, val)
		return reshape.Delete(sub, fromSuffix)
	})
}

// renameOp implements `rename {mapping: {from -> to}}`.
func renameOp(working, params reshape.Value) reshape.Value {
	mapping, ok := paramObject(params, "mapping")
	if !ok {
		return working
	}
	for _, from := range sortedObjKeys(mapping) {
		to, ok := mapping[from].String()
		if !ok {
			continue
		}
		working = renamePair(working, from, to)
	}
	return working
}

func init() {
	reshape.RegisterOp("rename", reshape.OperatorFunc(renameOp))
}
