package ops

import "github.com/graftlang/reshape/pkg/reshape"

// alignedTransfer implements the array-aligned elementwise semantics
// shared by `set`, `copy`, and `move` (spec.md §4.2): when from and to
// share the same leading `name[]` segment, read each array element's
// from-suffix and write it to that same element's to-suffix, rather than
// lifting/broadcasting across the whole array.
func alignedTransfer(working reshape.Value, fromPath, toPath reshape.Path) reshape.Value {
	fieldSeg := reshape.Path{fromPath[0]}
	arr, ok := reshape.Get(working, fieldSeg).Array()
	if !ok {
		return working
	}
	fromSuffix, toSuffix := fromPath[2:], toPath[2:]
	newArr := make([]reshape.Value, len(arr))
	for i, elem := range arr {
		val := reshape.Get(elem, fromSuffix)
		newArr[i] = reshape.Put(elem, toSuffix, val)
	}
	return reshape.Put(working, fieldSeg, reshape.Arr(newArr))
}

// transferPath moves/copies the value at `from` to `to` within working,
// choosing array-aligned transfer when both paths share a `name[]` prefix
// and falling back to plain read-then-put (which lifts over a `[]` present
// on only one side) otherwise.
func transferPath(working reshape.Value, from, to string) reshape.Value {
	fromPath := reshape.ParsePath(from)
	toPath := reshape.ParsePath(to)
	if reshape.SameArrayPrefix(fromPath, toPath) {
		return alignedTransfer(working, fromPath, toPath)
	}
	return reshape.Put(working, toPath, reshape.Get(working, fromPath))
}
