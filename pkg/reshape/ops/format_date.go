package ops

import "github.com/graftlang/reshape/pkg/reshape"

// formatDateOp implements `format_date {path, format}`: parse whatever is
// at path with the auto-detector and re-emit it in the requested format.
// Per spec.md §4.2/§7, an unparseable or non-string value is left
// unchanged rather than raising.
func formatDateOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	format, ok := paramString(params, "format")
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
	out, ok := formatTime(t, format)
	if !ok {
		return working
	}
	return reshape.PutPath(working, path, reshape.Str(out))
}

func init() {
	reshape.RegisterOp("format_date", reshape.OperatorFunc(formatDateOp))
}
