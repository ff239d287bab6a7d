package ops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/graftlang/reshape/pkg/reshape"
	_ "github.com/graftlang/reshape/pkg/reshape/ops"
)

var valueComparer = cmp.Comparer(func(a, b reshape.Value) bool {
	return reshape.Equal(a, b)
})

func obj(pairs ...interface{}) reshape.Value {
	m := map[string]reshape.Value{}
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i].(string)] = pairs[i+1].(reshape.Value)
	}
	return reshape.Obj(m)
}

func arr(items ...reshape.Value) reshape.Value { return reshape.Arr(items) }

func run(op string, working, params reshape.Value) reshape.Value {
	return reshape.Dispatch(op, working, params)
}

func TestDropRemovesEachPath(t *testing.T) {
	working := obj("a", reshape.Int(1), "b", reshape.Int(2), "c", reshape.Int(3))
	params := obj("paths", arr(reshape.Str("a"), reshape.Str("c")))
	got := run("drop", working, params)
	want := obj("b", reshape.Int(2))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestRenameSimple(t *testing.T) {
	working := obj("old", reshape.Int(1))
	params := obj("mapping", obj("old", reshape.Str("new")))
	got := run("rename", working, params)
	want := obj("new", reshape.Int(1))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestRenameUnderWildcard(t *testing.T) {
	working := obj("users", arr(
		obj("nm", reshape.Str("ava")),
		obj("nm", reshape.Str("bo")),
	))
	params := obj("mapping", obj("users[].nm", reshape.Str("users[].name")))
	got := run("rename", working, params)
	want := obj("users", arr(
		obj("name", reshape.Str("ava")),
		obj("name", reshape.Str("bo")),
	))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestSetLiteral(t *testing.T) {
	working := reshape.EmptyObj()
	params := obj("path", reshape.Str("a.b"), "value", reshape.Int(7))
	got := run("set", working, params)
	assert.True(t, cmp.Equal(reshape.Int(7), reshape.GetPath(got, "a.b"), valueComparer))
}

func TestSetPathSigil(t *testing.T) {
	working := obj("src", reshape.Int(9))
	params := obj("path", reshape.Str("dst"), "value", reshape.Str("$path:src"))
	got := run("set", working, params)
	assert.True(t, cmp.Equal(reshape.Int(9), reshape.GetPath(got, "dst"), valueComparer))
}

func TestCopyArrayAligned(t *testing.T) {
	working := obj("items", arr(
		obj("price", reshape.Num(10)),
		obj("price", reshape.Num(20)),
	))
	params := obj("from", reshape.Str("items[].price"), "to", reshape.Str("items[].cost"))
	got := run("copy", working, params)
	arrGot, _ := reshape.GetPath(got, "items").Array()
	for _, item := range arrGot {
		m, _ := item.Object()
		assert.True(t, cmp.Equal(m["price"], m["cost"], valueComparer))
	}
}

func TestCopyMissingSourceWritesNull(t *testing.T) {
	working := reshape.EmptyObj()
	params := obj("from", reshape.Str("missing"), "to", reshape.Str("dst"))
	got := run("copy", working, params)
	assert.True(t, reshape.GetPath(got, "dst").IsNull())
}

func TestMoveDeletesSource(t *testing.T) {
	working := obj("a", reshape.Int(1))
	params := obj("from", reshape.Str("a"), "to", reshape.Str("b"))
	got := run("move", working, params)
	assert.True(t, reshape.GetPath(got, "a").IsNull())
	assert.True(t, cmp.Equal(reshape.Int(1), reshape.GetPath(got, "b"), valueComparer))
}

func TestListToMapLastWins(t *testing.T) {
	working := obj("items", arr(
		obj("id", reshape.Str("x"), "v", reshape.Int(1)),
		obj("id", reshape.Str("x"), "v", reshape.Int(2)),
	))
	params := obj("path", reshape.Str("items"), "key_from", reshape.Str("id"), "value_from", reshape.Str("v"))
	got := run("list_to_map", working, params)
	want := obj("items", obj("x", reshape.Int(2)))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestListToMapUnderWildcard(t *testing.T) {
	working := obj("events", arr(
		obj("id", reshape.Int(1), "cfg", arr(
			obj("k", reshape.Str("t"), "v", reshape.Str("dark")),
			obj("k", reshape.Str("l"), "v", reshape.Str("en")),
		)),
	))
	params := obj("path", reshape.Str("events[].cfg"), "key_from", reshape.Str("k"), "value_from", reshape.Str("v"))
	got := run("list_to_map", working, params)
	got = run("drop", got, obj("paths", arr(reshape.Str("events[].id"))))
	want := obj("events", arr(obj("cfg", obj("t", reshape.Str("dark"), "l", reshape.Str("en")))))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestListToDynamicMapGroups(t *testing.T) {
	working := obj("items", arr(
		obj("id", reshape.Str("x"), "v", reshape.Int(1)),
		obj("id", reshape.Str("x"), "v", reshape.Int(2)),
		obj("id", reshape.Str("y"), "v", reshape.Int(3)),
	))
	params := obj("path", reshape.Str("items"), "key_from", reshape.Str("id"), "value_from", reshape.Str("v"))
	got := run("list_to_dynamic_map", working, params)
	want := obj("items", obj(
		"x", arr(reshape.Int(1), reshape.Int(2)),
		"y", arr(reshape.Int(3)),
	))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestAggregateListUnderWildcard(t *testing.T) {
	working := obj("groups", arr(
		obj("items", arr(obj("price", reshape.Num(5)), obj("price", reshape.Num(9)))),
		obj("items", arr(obj("price", reshape.Num(2)), obj("price", reshape.Num(4)))),
	))
	params := obj(
		"path", reshape.Str("groups[].items"),
		"shape", obj("highest", reshape.Str("$max(price)")),
	)
	got := run("aggregate_list", working, params)
	want := obj("groups", arr(
		obj("items", obj("highest", reshape.Num(9))),
		obj("items", obj("highest", reshape.Num(4))),
	))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestPromoteListToKeys(t *testing.T) {
	working := obj("p", obj("items", arr(
		obj("k", reshape.Str("a"), "v", reshape.Int(1)),
		obj("k", reshape.Str("b"), "v", reshape.Int(2)),
	)))
	params := obj(
		"path", reshape.Str("p"),
		"child_list", reshape.Str("items"),
		"key_from", reshape.Str("k"),
		"value_from", reshape.Str("v"),
	)
	got := run("promote_list_to_keys", working, params)
	want := obj("p", obj("a", reshape.Int(1), "b", reshape.Int(2)))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestHoistMapValuesReplaceParent(t *testing.T) {
	working := obj("p", obj("keep", reshape.Int(1), "child", obj("x", reshape.Int(2))))
	params := obj("path", reshape.Str("p"), "child_key", reshape.Str("child"), "replace_parent", reshape.Bool(true))
	got := run("hoist_map_values", working, params)
	want := obj("p", obj("keep", reshape.Int(1), "x", reshape.Int(2)))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestHoistMapValuesDefaultIsNoop(t *testing.T) {
	working := obj("p", obj("keep", reshape.Int(1), "child", obj("x", reshape.Int(2))))
	params := obj("path", reshape.Str("p"), "child_key", reshape.Str("child"))
	got := run("hoist_map_values", working, params)
	assert.True(t, cmp.Equal(working, got, valueComparer))
}

func TestPruneStripsEmptyValues(t *testing.T) {
	working := obj(
		"a", reshape.Str(""),
		"b", reshape.Null(),
		"c", reshape.EmptyObj(),
		"d", reshape.EmptyArr(),
		"e", reshape.Int(0),
		"f", obj("g", reshape.Str("")),
	)
	params := obj("strategy", reshape.Str("empty_values"))
	got := run("prune", working, params)
	want := obj("e", reshape.Int(0))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestPruneUnknownStrategyIsNoop(t *testing.T) {
	working := obj("a", reshape.Str(""))
	got := run("prune", working, obj("strategy", reshape.Str("null_values")))
	assert.True(t, cmp.Equal(working, got, valueComparer))
}

func TestTruncateListShape(t *testing.T) {
	working := obj("items", arr(reshape.Int(1), reshape.Int(2), reshape.Int(3), reshape.Int(4)))
	params := obj(
		"path", reshape.Str("items"),
		"max_size", reshape.Int(2),
		"shape", obj("total", reshape.Str("$length"), "head", reshape.Str("$slice(0,2)")),
	)
	got := run("truncate_list", working, params)
	want := obj("items", obj("total", reshape.Int(4), "head", arr(reshape.Int(1), reshape.Int(2))))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestAggregateListMinMax(t *testing.T) {
	working := obj("items", arr(
		obj("price", reshape.Num(5)),
		obj("price", reshape.Num(9)),
		obj("price", reshape.Num(1)),
	))
	params := obj(
		"path", reshape.Str("items"),
		"shape", obj("lowest", reshape.Str("$min(price)"), "highest", reshape.Str("$max(price)")),
	)
	got := run("aggregate_list", working, params)
	want := obj("items", obj("lowest", reshape.Num(1), "highest", reshape.Num(9)))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestTransformUppercaseAndLength(t *testing.T) {
	working := obj("name", reshape.Str("ava"))
	got := run("transform", working, obj("path", reshape.Str("name"), "function", reshape.Str("uppercase")))
	assert.True(t, cmp.Equal(reshape.Str("AVA"), reshape.GetPath(got, "name"), valueComparer))

	got = run("transform", got, obj("path", reshape.Str("name"), "function", reshape.Str("length")))
	assert.True(t, cmp.Equal(reshape.Int(3), reshape.GetPath(got, "name"), valueComparer))
}

func TestTransformUnderWildcard(t *testing.T) {
	working := obj("tags", arr(reshape.Str("a"), reshape.Str("b")))
	got := run("transform", working, obj("path", reshape.Str("tags[]"), "function", reshape.Str("uppercase")))
	want := obj("tags", arr(reshape.Str("A"), reshape.Str("B")))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestCurrentTimestampWritesParsableDate(t *testing.T) {
	got := run("current_timestamp", reshape.EmptyObj(), obj("path", reshape.Str("now")))
	s, ok := reshape.GetPath(got, "now").String()
	assert.True(t, ok)
	assert.NotEmpty(t, s)
}

func TestFormatDateRoundTrip(t *testing.T) {
	working := obj("ts", reshape.Str("2024-03-05T12:00:00Z"))
	got := run("format_date", working, obj("path", reshape.Str("ts"), "format", reshape.Str("date_only")))
	assert.True(t, cmp.Equal(reshape.Str("2024-03-05"), reshape.GetPath(got, "ts"), valueComparer))
}

func TestParseDateNormalizesToISO(t *testing.T) {
	working := obj("ts", reshape.Str("1700000000"))
	got := run("parse_date", working, obj("path", reshape.Str("ts")))
	s, ok := reshape.GetPath(got, "ts").String()
	assert.True(t, ok)
	assert.Contains(t, s, "2023-")
}

func TestDateAddDays(t *testing.T) {
	working := obj("ts", reshape.Str("2024-01-01T00:00:00Z"))
	got := run("date_add", working, obj(
		"path", reshape.Str("ts"), "amount", reshape.Int(1), "unit", reshape.Str("days"),
	))
	assert.True(t, cmp.Equal(reshape.Str("2024-01-02T00:00:00Z"), reshape.GetPath(got, "ts"), valueComparer))
}

func TestDateDiffDays(t *testing.T) {
	working := obj(
		"from", reshape.Str("2024-01-01T00:00:00Z"),
		"to", reshape.Str("2024-01-03T00:00:00Z"),
	)
	got := run("date_diff", working, obj(
		"from_path", reshape.Str("from"),
		"to_path", reshape.Str("to"),
		"result_path", reshape.Str("diff"),
		"unit", reshape.Str("days"),
	))
	assert.True(t, cmp.Equal(reshape.Num(2), reshape.GetPath(got, "diff"), valueComparer))
}

func TestDateDiffRejectsLongUnits(t *testing.T) {
	working := obj("from", reshape.Str("2024-01-01T00:00:00Z"), "to", reshape.Str("2024-06-01T00:00:00Z"))
	got := run("date_diff", working, obj(
		"from_path", reshape.Str("from"),
		"to_path", reshape.Str("to"),
		"result_path", reshape.Str("diff"),
		"unit", reshape.Str("months"),
	))
	assert.True(t, reshape.GetPath(got, "diff").IsNull())
}

func TestProjectRebuildsEachElement(t *testing.T) {
	working := obj("items", arr(
		obj("id", reshape.Str("1"), "extra", reshape.Str("drop-me")),
	))
	params := obj("path", reshape.Str("items"), "mapping", obj("identifier", reshape.Str("id")))
	got := run("project", working, params)
	want := obj("items", arr(obj("identifier", reshape.Str("1"))))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestUnknownOpViaDispatchIsIdentity(t *testing.T) {
	working := obj("a", reshape.Int(1))
	got := reshape.Dispatch("nonexistent", working, reshape.EmptyObj())
	assert.True(t, cmp.Equal(working, got, valueComparer))
}
