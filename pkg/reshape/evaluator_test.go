package reshape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/graftlang/reshape/pkg/reshape"
	_ "github.com/graftlang/reshape/pkg/reshape/ops" // register operators for Dispatch
)

func TestExecuteNoRootNoPipelineReturnsInputWhole(t *testing.T) {
	input := obj("a", reshape.Int(1))
	got := reshape.Execute(input, reshape.EmptyObj())
	assert.True(t, cmp.Equal(input, got, valueComparer))
}

func TestExecuteResolvesRootPath(t *testing.T) {
	input := obj("data", obj("a", reshape.Int(1)))
	config := obj("root", obj("path", reshape.Str("data")))
	got := reshape.Execute(input, config)
	assert.True(t, cmp.Equal(obj("a", reshape.Int(1)), got, valueComparer))
}

func TestExecuteMissingRootDefaultsToEmptyObj(t *testing.T) {
	input := obj("a", reshape.Int(1))
	config := obj("root", obj("path", reshape.Str("missing")))
	got := reshape.Execute(input, config)
	assert.True(t, cmp.Equal(reshape.EmptyObj(), got, valueComparer))
}

func TestExecuteMissingRootReturnOriginal(t *testing.T) {
	input := obj("a", reshape.Int(1))
	config := obj("root", obj("path", reshape.Str("missing"), "on_null", reshape.Str("return_original")))
	got := reshape.Execute(input, config)
	assert.True(t, cmp.Equal(input, got, valueComparer))
}

func TestExecuteRunsPipelineSteps(t *testing.T) {
	input := obj("a", reshape.Int(1), "b", reshape.Int(2))
	config := obj("pipeline", reshape.Arr([]reshape.Value{
		obj("op", reshape.Str("drop"), "paths", reshape.Arr([]reshape.Value{reshape.Str("b")})),
	}))
	got := reshape.Execute(input, config)
	want := obj("a", reshape.Int(1))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}

func TestExecuteUnknownOpIsIdentity(t *testing.T) {
	input := obj("a", reshape.Int(1))
	config := obj("pipeline", reshape.Arr([]reshape.Value{
		obj("op", reshape.Str("not_a_real_op")),
	}))
	got := reshape.Execute(input, config)
	assert.True(t, cmp.Equal(input, got, valueComparer))
}

func TestExecuteOutputTemplate(t *testing.T) {
	input := obj("a", reshape.Int(1))
	config := obj(
		"pipeline", reshape.Arr([]reshape.Value{
			obj("op", reshape.Str("set"), "path", reshape.Str("b"), "value", reshape.Int(2)),
		}),
		"output", obj("sum_input", reshape.Str("$working.b")),
	)
	got := reshape.Execute(input, config)
	want := obj("sum_input", reshape.Int(2))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}
