package reshape

// This file is the path engine's traversal core: five primitives over a
// Value + Path — get, put, update, delete, and the wildcard-aware
// map-over they all share — exactly as described in spec.md §4.1. Every
// operator in pkg/reshape/ops is built exclusively out of these, so
// wildcard semantics only need to be gotten right once.

// MapArray applies f to every element of items and returns a new slice.
// This is the wildcard-aware map-over primitive; Get/Put/Update/Delete
// all route their `[]` handling through it.
func MapArray(items []Value, f func(Value) Value) []Value {
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}

// Get reads the value at p within v. Reading through a wildcard lifts the
// remaining read over every array element. Any shape mismatch (missing
// key, non-object where a field was expected, non-array where a wildcard
// was expected) yields Null rather than an error.
func Get(v Value, p Path) Value { return get(v, p, 0) }

func get(v Value, p Path, depth int) Value {
	if depth > maxTraversalDepth {
		return Null()
	}
	if len(p) == 0 {
		return v
	}
	seg, rest := p[0], p[1:]
	if seg.IsWildcard() {
		arr, ok := v.Array()
		if !ok {
			return Null()
		}
		return Arr(MapArray(arr, func(item Value) Value { return get(item, rest, depth+1) }))
	}
	obj, ok := v.Object()
	if !ok {
		return Null()
	}
	child, exists := obj[seg.FieldName()]
	if !exists {
		return Null()
	}
	return get(child, rest, depth+1)
}

// Put writes w at p within v. Writing through a wildcard broadcasts w
// (or, recursively, the result of continuing to write the suffix) to
// every array element. Missing intermediate object keys are created as
// empty objects along the way. Writing through a non-object/non-array
// segment leaves v unchanged.
func Put(v Value, p Path, w Value) Value { return put(v, p, w, 0) }

func put(v Value, p Path, w Value, depth int) Value {
	if depth > maxTraversalDepth {
		return v
	}
	if len(p) == 0 {
		return w
	}
	seg, rest := p[0], p[1:]
	if seg.IsWildcard() {
		arr, ok := v.Array()
		if !ok {
			return v
		}
		return Arr(MapArray(arr, func(item Value) Value { return put(item, rest, w, depth+1) }))
	}
	obj, ok := v.Object()
	switch {
	case ok:
		obj = cloneObj(obj)
	case v.IsNull():
		obj = map[string]Value{}
	default:
		return v
	}
	child := obj[seg.FieldName()]
	obj[seg.FieldName()] = put(child, rest, w, depth+1)
	return Obj(obj)
}

// Update applies f to the value(s) at p within v. In the non-wildcard
// case this is equivalent to Put(v, p, f(Get(v, p))); under a wildcard,
// f is applied pointwise to each array element rather than to the array
// as a whole. A missing/wrong-typed array under a wildcard leaves v
// unchanged.
func Update(v Value, p Path, f func(Value) Value) Value { return update(v, p, f, 0) }

func update(v Value, p Path, f func(Value) Value, depth int) Value {
	if depth > maxTraversalDepth {
		return v
	}
	if len(p) == 0 {
		return f(v)
	}
	seg, rest := p[0], p[1:]
	if seg.IsWildcard() {
		arr, ok := v.Array()
		if !ok {
			return v
		}
		return Arr(MapArray(arr, func(item Value) Value { return update(item, rest, f, depth+1) }))
	}
	obj, ok := v.Object()
	switch {
	case ok:
		obj = cloneObj(obj)
	case v.IsNull():
		obj = map[string]Value{}
	default:
		return v
	}
	child := obj[seg.FieldName()]
	obj[seg.FieldName()] = update(child, rest, f, depth+1)
	return Obj(obj)
}

// Delete removes the value at p within v. Deleting an absent key, or
// deleting through a non-object segment, is a no-op. Under a wildcard,
// delete is mapped over every element (deleting the suffix path within
// each element, not the element itself). Delete of the empty path is a
// no-op — there is no parent to remove the subtree from.
func Delete(v Value, p Path) Value { return del(v, p, 0) }

func del(v Value, p Path, depth int) Value {
	if depth > maxTraversalDepth || len(p) == 0 {
		return v
	}
	seg, rest := p[0], p[1:]
	if seg.IsWildcard() {
		arr, ok := v.Array()
		if !ok {
			return v
		}
		return Arr(MapArray(arr, func(item Value) Value { return del(item, rest, depth+1) }))
	}
	obj, ok := v.Object()
	if !ok {
		return v
	}
	if _, exists := obj[seg.FieldName()]; !exists {
		return v
	}
	out := cloneObj(obj)
	if len(rest) == 0 {
		delete(out, seg.FieldName())
		return Obj(out)
	}
	out[seg.FieldName()] = del(out[seg.FieldName()], rest, depth+1)
	return Obj(out)
}

// GetPath is a convenience wrapper parsing src before calling Get. Parsing
// goes through the memoized path cache (see path.go).
func GetPath(v Value, src string) Value { return Get(v, memoParsePath(src)) }

// PutPath is a convenience wrapper parsing src before calling Put.
func PutPath(v Value, src string, w Value) Value { return Put(v, memoParsePath(src), w) }

// UpdatePath is a convenience wrapper parsing src before calling Update.
func UpdatePath(v Value, src string, f func(Value) Value) Value {
	return Update(v, memoParsePath(src), f)
}

// DeletePath is a convenience wrapper parsing src before calling Delete.
func DeletePath(v Value, src string) Value { return Delete(v, memoParsePath(src)) }

// SameArrayPrefix reports whether a and b both begin with the identical
// `name[]` pair — a non-wildcard field segment followed immediately by a
// wildcard, with the same field name on both sides. Operators like `set`
// and `copy` use this to choose array-aligned elementwise behavior over
// broadcast/lift.
func SameArrayPrefix(a, b Path) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	if a[0].IsWildcard() || b[0].IsWildcard() {
		return false
	}
	if a[0].FieldName() != b[0].FieldName() {
		return false
	}
	return a[1].IsWildcard() && b[1].IsWildcard()
}
