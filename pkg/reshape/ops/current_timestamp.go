package ops

import (
	"time"

	"github.com/graftlang/reshape/pkg/reshape"
)

// currentTimestampOp implements `current_timestamp {path, format, timezone}`.
// An unrecognized format is a shape mismatch and is identity, per the
// general error policy in spec.md §7.
func currentTimestampOp(working, params reshape.Value) reshape.Value {
	path, ok := paramString(params, "path")
	if !ok {
		return working
	}
	format := paramStringDefault(params, "format", "iso8601")
	timezone := paramStringDefault(params, "timezone", "UTC")

	now := locate(time.Now(), timezone)
	s, ok := formatTime(now, format)
	if !ok {
		return working
	}
	return reshape.PutPath(working, path, reshape.Str(s))
}

func init() {
	reshape.RegisterOp("current_timestamp", reshape.OperatorFunc(currentTimestampOp))
}
