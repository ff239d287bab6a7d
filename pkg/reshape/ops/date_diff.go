package ops

import (
	"math"

	"github.com/graftlang/reshape/pkg/reshape"
)

// dateDiffOp implements `date_diff {from_path, to_path, result_path, unit}`:
// to - from expressed in unit, integer-valued for "seconds" and real-valued
// otherwise. A parse failure, or an unsupported unit (months/years are
// date_add-only), writes Null at result_path rather than leaving it
// untouched.
func dateDiffOp(working, params reshape.Value) reshape.Value {
	fromPath, ok := paramString(params, "from_path")
	if !ok {
		return working
	}
	toPath, ok := paramString(params, "to_path")
	if !ok {
		return working
	}
	resultPath, ok := paramString(params, "result_path")
	if !ok {
		return working
	}
	unit := paramStringDefault(params, "unit", "days")

	secs, ok := unitSeconds(unit, false)
	if !ok {
		return reshape.PutPath(working, resultPath, reshape.Null())
	}

	fromRaw, ok := reshape.GetPath(working, fromPath).String()
	if !ok {
		return reshape.PutPath(working, resultPath, reshape.Null())
	}
	toRaw, ok := reshape.GetPath(working, toPath).String()
	if !ok {
		return reshape.PutPath(working, resultPath, reshape.Null())
	}
	from, ok := parseAnyDate(fromRaw)
	if !ok {
		return reshape.PutPath(working, resultPath, reshape.Null())
	}
	to, ok := parseAnyDate(toRaw)
	if !ok {
		return reshape.PutPath(working, resultPath, reshape.Null())
	}

	diffSeconds := to.Sub(from).Seconds()
	value := diffSeconds / secs
	if unit == "seconds" {
		return reshape.PutPath(working, resultPath, reshape.Int(int64(math.Round(value))))
	}
	return reshape.PutPath(working, resultPath, reshape.Num(value))
}

func init() {
	reshape.RegisterOp("date_diff", reshape.OperatorFunc(dateDiffOp))
}
