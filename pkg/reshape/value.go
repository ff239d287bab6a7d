package reshape

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the variant held by a Value, mirroring the tagged union
// {Null, Bool, Num, Str, Arr, Obj} from the data model.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a recursively defined, logically immutable JSON-like tree.
// Every traversal and operator returns a new Value; a Value's internal
// slice/map is never mutated in place once constructed, only replaced.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Num wraps a float64.
func Num(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int wraps an integer as a numeric Value.
func Int(i int64) Value { return Value{kind: KindNumber, n: float64(i)} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Arr wraps a slice of Values. The given slice is not retained by
// reference after callers stop mutating it; treat ownership as
// transferred to the Value.
func Arr(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// Obj wraps a string-keyed map of Values. Key order is never semantically
// meaningful (spec: object equality is unordered).
func Obj(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindObject, obj: m}
}

// EmptyObj returns a fresh empty object Value.
func EmptyObj() Value { return Obj(map[string]Value{}) }

// EmptyArr returns a fresh empty array Value.
func EmptyArr() Value { return Arr([]Value{}) }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the underlying bool and whether v was actually a bool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Number returns the underlying float64 and whether v was actually numeric.
func (v Value) Number() (float64, bool) { return v.n, v.kind == KindNumber }

// String returns the underlying string and whether v was actually a string.
func (v Value) String() (string, bool) { return v.s, v.kind == KindString }

// Array returns the underlying slice and whether v was actually an array.
// The returned slice must be treated as read-only by callers.
func (v Value) Array() ([]Value, bool) { return v.arr, v.kind == KindArray }

// Object returns the underlying map and whether v was actually an object.
// The returned map must be treated as read-only by callers.
func (v Value) Object() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// cloneArr makes a shallow copy of an array's backing slice.
func cloneArr(a []Value) []Value {
	out := make([]Value, len(a))
	copy(out, a)
	return out
}

// cloneObj makes a shallow copy of an object's backing map.
func cloneObj(m map[string]Value) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// IsEmptyValue reports whether v is one of the four "empty" shapes that
// the prune operator strips: Null, "", {}, [].
func (v Value) IsEmptyValue() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.s == ""
	case KindObject:
		return len(v.obj) == 0
	case KindArray:
		return len(v.arr) == 0
	default:
		return false
	}
}

// AsDisplayString renders v the way the `string` transform function does:
// bool/number become decimal text, null becomes "", everything else (and
// already-strings) pass through their Go %v form.
func (v Value) AsDisplayString() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	default:
		return fmt.Sprintf("%v", v.Raw())
	}
}

// formatNumber renders a float64 as an integer literal when it is
// integral (and representable), else as a compact decimal.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1e18 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Raw converts a Value to a plain interface{} tree of
// nil/bool/float64/string/[]interface{}/map[string]interface{}, suitable
// for encoding/json-compatible marshalers.
func (v Value) Raw() interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Raw()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Raw()
		}
		return out
	default:
		return nil
	}
}

// FromRaw builds a Value from a plain interface{} tree as produced by a
// JSON decoder (nil/bool/float64/string/[]interface{}/map[string]interface{}).
// Unrecognized shapes are coerced to their string representation rather
// than panicking, so a defective JSON document never crashes the core.
func FromRaw(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(val)
	case float64:
		return Num(val)
	case float32:
		return Num(float64(val))
	case int:
		return Int(int64(val))
	case int64:
		return Int(val)
	case string:
		return Str(val)
	case []interface{}:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = FromRaw(item)
		}
		return Arr(items)
	case map[string]interface{}:
		m := make(map[string]Value, len(val))
		for k, item := range val {
			m[k] = FromRaw(item)
		}
		return Obj(m)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

// Equal reports deep equality, treating object key order as irrelevant
// (spec: "tests must treat object equality as unordered").
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
