// Package ops implements the operator catalogue: one pure Value->Value
// handler per operator kind, each registering itself into
// reshape.OpRegistry from an init(), grounded on the teacher's
// pkg/graft/operators/op_*.go convention (one file per operator, a
// package-level init() calling RegisterOp).
package ops

import "github.com/graftlang/reshape/pkg/reshape"

// paramString reads a required string parameter from params, or ("", false)
// if params isn't an Obj or the key is absent/non-string.
func paramString(params reshape.Value, key string) (string, bool) {
	obj, ok := params.Object()
	if !ok {
		return "", false
	}
	return obj[key].String()
}

// paramStringDefault is paramString with a fallback for an absent key.
func paramStringDefault(params reshape.Value, key, fallback string) string {
	if s, ok := paramString(params, key); ok {
		return s
	}
	return fallback
}

// paramValue reads a parameter of any shape, or Null if absent.
func paramValue(params reshape.Value, key string) reshape.Value {
	obj, ok := params.Object()
	if !ok {
		return reshape.Null()
	}
	v, ok := obj[key]
	if !ok {
		return reshape.Null()
	}
	return v
}

// paramObject reads a required Obj-shaped parameter.
func paramObject(params reshape.Value, key string) (map[string]reshape.Value, bool) {
	return paramValue(params, key).Object()
}

// paramArray reads a required Arr-shaped parameter.
func paramArray(params reshape.Value, key string) ([]reshape.Value, bool) {
	return paramValue(params, key).Array()
}

// paramBoolDefault reads a bool parameter, defaulting when absent or of the
// wrong shape.
func paramBoolDefault(params reshape.Value, key string, fallback bool) bool {
	obj, ok := params.Object()
	if !ok {
		return fallback
	}
	v, ok := obj[key]
	if !ok {
		return fallback
	}
	if b, ok := v.Bool(); ok {
		return b
	}
	return fallback
}

// paramInt reads a required integer-valued numeric parameter.
func paramInt(params reshape.Value, key string) (int, bool) {
	n, ok := paramValue(params, key).Number()
	if !ok {
		return 0, false
	}
	return int(n), true
}
