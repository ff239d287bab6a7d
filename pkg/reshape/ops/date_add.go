package ops

import (
	"time"

	"github.com/graftlang/reshape/pkg/reshape"
)

// dateAddOp implements `date_add {path, amount, unit, output_format}`.
// amount may be negative; unit additionally accepts "months" (30 days) and
// "years" (365 days), which date_diff does not.
func dateAddOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	amount, ok := paramInt(params, "amount")
	if !ok {
		return working
	}
	unit, ok := paramString(params, "unit")
	if !ok {
		return working
	}
	outputFormat := paramStringDefault(params, "output_format", "iso8601")

	secs, ok := unitSeconds(unit, true)
	if !ok {
		return working
	}

	raw, ok := reshape.GetPath(working, path).String()
	if !ok {
		return working
	}
	t, ok := parseAnyDate(raw)
	if !ok {
		return working
	}

	shifted := t.Add(time.Duration(float64(amount) * secs * float64(time.Second)))
	out, ok := formatTime(shifted, outputFormat)
	if !ok {
		return working
	}
	return reshape.PutPath(working, path, reshape.Str(out))
}

func init() {
	reshape.RegisterOp("date_add", reshape.OperatorFunc(dateAddOp))
}
