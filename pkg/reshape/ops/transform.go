package ops

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/graftlang/reshape/pkg/reshape"
)

var (
	upperCaser      = cases.Upper(language.Und)
	lowerCaser      = cases.Lower(language.Und)
	capitalizeCaser = cases.Title(language.Und)
)

// transformOp implements `transform {path, function, args?}`. Unlike most
// operators it routes through reshape.UpdatePath so a wildcard-bearing
// path applies the function pointwise to every matched element for free.
func transformOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	function, ok := paramString(params, "function")
	if !ok {
		return working
	}
	args, _ := paramArray(params, "args")

	return reshape.UpdatePath(working, path, func(v reshape.Value) reshape.Value {
		return applyTransform(function, v, args)
	})
}

// applyTransform dispatches one transform function by name. An unknown
// function name is identity, per spec.md §4.2.
func applyTransform(function string, v reshape.Value, args []reshape.Value) reshape.Value {
	switch function {
	case "uppercase":
		return stringOnly(v, upperCaser.String)
	case "lowercase":
		return stringOnly(v, lowerCaser.String)
	case "capitalize":
		return stringOnly(v, capitalizeCaser.String)
	case "trim":
		return stringOnly(v, strings.TrimSpace)
	case "reverse":
		return transformReverse(v)
	case "string":
		return reshape.Str(v.AsDisplayString())
	case "number":
		return transformNumeric(v, false)
	case "integer":
		return transformNumeric(v, true)
	case "float":
		return transformNumeric(v, false)
	case "boolean":
		return transformBoolean(v)
	case "length":
		return transformLength(v)
	case "split":
		return transformSplit(v, argString(args, 0, " "))
	case "join":
		return transformJoin(v, argString(args, 0, " "))
	case "abs":
		return transformAbs(v)
	case "round":
		return transformRound(v, argInt(args, 0, 0))
	default:
		return v
	}
}

// stringOnly applies f to v's string content; any other kind is unchanged.
func stringOnly(v reshape.Value, f func(string) string) reshape.Value {
	s, ok := v.String()
	if !ok {
		return v
	}
	return reshape.Str(f(s))
}

// transformReverse reverses a string's runes or an array's element order;
// anything else is unchanged.
func transformReverse(v reshape.Value) reshape.Value {
	if s, ok := v.String(); ok {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return reshape.Str(string(runes))
	}
	if arr, ok := v.Array(); ok {
		out := make([]reshape.Value, len(arr))
		for i, item := range arr {
			out[len(arr)-1-i] = item
		}
		return reshape.Arr(out)
	}
	return v
}

// transformNumeric backs "number", "integer" and "float". Value's Num
// variant is a single float64 with no separate int representation, so
// "number" and "float" produce the same result; truncate (set for
// "integer") additionally truncates toward zero.
func transformNumeric(v reshape.Value, truncate bool) reshape.Value {
	n, ok := v.Number()
	if !ok {
		s, isStr := v.String()
		if !isStr {
			return reshape.Null()
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return reshape.Null()
		}
		n = parsed
	}
	if truncate {
		n = math.Trunc(n)
	}
	return reshape.Num(n)
}

// transformBoolean implements the `boolean` function's explicit falsy set:
// false, null, "", 0, 0.0, "false", "False", "FALSE", "0".
func transformBoolean(v reshape.Value) reshape.Value {
	switch v.Kind() {
	case reshape.KindNull:
		return reshape.Bool(false)
	case reshape.KindBool:
		b, _ := v.Bool()
		return reshape.Bool(b)
	case reshape.KindNumber:
		n, _ := v.Number()
		return reshape.Bool(n != 0)
	case reshape.KindString:
		s, _ := v.String()
		switch s {
		case "", "false", "False", "FALSE", "0":
			return reshape.Bool(false)
		default:
			return reshape.Bool(true)
		}
	default:
		return reshape.Bool(true)
	}
}

// transformLength returns string rune count, array length, or object size;
// any other kind is Null.
func transformLength(v reshape.Value) reshape.Value {
	switch v.Kind() {
	case reshape.KindString:
		s, _ := v.String()
		return reshape.Int(int64(utf8.RuneCountInString(s)))
	case reshape.KindArray:
		arr, _ := v.Array()
		return reshape.Int(int64(len(arr)))
	case reshape.KindObject:
		obj, _ := v.Object()
		return reshape.Int(int64(len(obj)))
	default:
		return reshape.Null()
	}
}

func transformSplit(v reshape.Value, delim string) reshape.Value {
	s, ok := v.String()
	if !ok {
		return v
	}
	parts := strings.Split(s, delim)
	out := make([]reshape.Value, len(parts))
	for i, p := range parts {
		out[i] = reshape.Str(p)
	}
	return reshape.Arr(out)
}

func transformJoin(v reshape.Value, delim string) reshape.Value {
	arr, ok := v.Array()
	if !ok {
		return v
	}
	parts := make([]string, len(arr))
	for i, item := range arr {
		parts[i] = item.AsDisplayString()
	}
	return reshape.Str(strings.Join(parts, delim))
}

func transformAbs(v reshape.Value) reshape.Value {
	n, ok := v.Number()
	if !ok {
		return v
	}
	return reshape.Num(math.Abs(n))
}

func transformRound(v reshape.Value, precision int) reshape.Value {
	n, ok := v.Number()
	if !ok {
		return v
	}
	mult := math.Pow(10, float64(precision))
	return reshape.Num(math.Round(n*mult) / mult)
}

// argString reads args[i] as a string, or fallback if out of range / not a
// string.
func argString(args []reshape.Value, i int, fallback string) string {
	if i >= len(args) {
		return fallback
	}
	if s, ok := args[i].String(); ok {
		return s
	}
	return fallback
}

// argInt reads args[i] as an integer-valued number, or fallback.
func argInt(args []reshape.Value, i int, fallback int) int {
	if i >= len(args) {
		return fallback
	}
	if n, ok := args[i].Number(); ok {
		return int(n)
	}
	return fallback
}

func init() {
	reshape.RegisterOp("transform", reshape.OperatorFunc(transformOp))
}
