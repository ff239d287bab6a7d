package ops

import "github.com/graftlang/reshape/pkg/reshape"

// parseDateOp implements `parse_date {path, output_format="iso8601"}`:
// canonicalize whatever date representation sits at path into
// output_format. Identical machinery to format_date, with a defaulted
// format parameter rather than a required one.
func parseDateOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	outputFormat := paramStringDefault(params, "output_format", "iso8601")

	raw, ok := reshape.GetPath(working, path).String()
	if !ok {
		return working
	}
	t, ok := parseAnyDate(raw)
	if !ok {
		return working
	}
	out, ok := formatTime(t, outputFormat)
	if !ok {
		return working
	}
	return reshape.PutPath(working, path, reshape.Str(out))
}

func init() {
	reshape.RegisterOp("parse_date", reshape.OperatorFunc(parseDateOp))
}
