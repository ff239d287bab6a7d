package ops

import (
	"strconv"
	"strings"

	"github.com/graftlang/reshape/pkg/reshape"
)

// sigilArgs extracts the comma-separated arguments out of a string of the
// form "$name(a,b,c)", reporting false when s lacks the "$name(" prefix or
// the trailing ")". Leading/trailing whitespace around each argument is
// trimmed.
func sigilArgs(s, prefix string) ([]string, bool) {
	if !strings.HasPrefix(s, prefix+"(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, prefix+"("), ")")
	if inner == "" {
		return nil, true
	}
	parts := strings.SplitN(inner, ",", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// clampSlice bounds [i, j) to a valid, non-negative range within [0, n].
func clampSlice(i, j, n int) (int, int) {
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	if j > n {
		j = n
	}
	if j < i {
		j = i
	}
	return i, j
}

// resolveShapeLeaf resolves one leaf of a truncate_list `shape` template
// against the source list, per spec.md §4.2. $length, $slice(i,j) and
// $map_slice(i,j,path) are the recognized sigils; anything else is literal.
// Objects recurse leaf by leaf, mirroring the output template resolver's
// structure.
func resolveShapeLeaf(items []reshape.Value, leaf reshape.Value) reshape.Value {
	if obj, ok := leaf.Object(); ok {
		out := make(map[string]reshape.Value, len(obj))
		for k, v := range obj {
			out[k] = resolveShapeLeaf(items, v)
		}
		return reshape.Obj(out)
	}
	s, ok := leaf.String()
	if !ok {
		return leaf
	}
	if s == "$length" {
		return reshape.Int(int64(len(items)))
	}
	if args, ok := sigilArgs(s, "$slice"); ok && len(args) == 2 {
		i, erri := strconv.Atoi(args[0])
		j, errj := strconv.Atoi(args[1])
		if erri != nil || errj != nil {
			return leaf
		}
		i, j = clampSlice(i, j, len(items))
		return reshape.Arr(append([]reshape.Value(nil), items[i:j]...))
	}
	if args, ok := sigilArgs(s, "$map_slice"); ok && len(args) == 3 {
		i, erri := strconv.Atoi(args[0])
		j, errj := strconv.Atoi(args[1])
		if erri != nil || errj != nil {
			return leaf
		}
		i, j = clampSlice(i, j, len(items))
		path := args[2]
		mapped := reshape.MapArray(items[i:j], func(item reshape.Value) reshape.Value {
			return reshape.GetPath(item, path)
		})
		return reshape.Arr(mapped)
	}
	return leaf
}
