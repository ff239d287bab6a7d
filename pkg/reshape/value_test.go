package reshape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graftlang/reshape/pkg/reshape"
)

func TestEqualIgnoresObjectKeyOrder(t *testing.T) {
	a := obj("x", reshape.Int(1), "y", reshape.Int(2))
	b := obj("y", reshape.Int(2), "x", reshape.Int(1))
	assert.True(t, reshape.Equal(a, b))
}

func TestEqualDetectsDifference(t *testing.T) {
	a := obj("x", reshape.Int(1))
	b := obj("x", reshape.Int(2))
	assert.False(t, reshape.Equal(a, b))
}

func TestIsEmptyValue(t *testing.T) {
	assert.True(t, reshape.Null().IsEmptyValue())
	assert.True(t, reshape.Str("").IsEmptyValue())
	assert.True(t, reshape.EmptyObj().IsEmptyValue())
	assert.True(t, reshape.EmptyArr().IsEmptyValue())
	assert.False(t, reshape.Str("x").IsEmptyValue())
	assert.False(t, reshape.Int(0).IsEmptyValue())
	assert.False(t, reshape.Bool(false).IsEmptyValue())
}

func TestAsDisplayString(t *testing.T) {
	assert.Equal(t, "", reshape.Null().AsDisplayString())
	assert.Equal(t, "true", reshape.Bool(true).AsDisplayString())
	assert.Equal(t, "3", reshape.Int(3).AsDisplayString())
	assert.Equal(t, "3.5", reshape.Num(3.5).AsDisplayString())
	assert.Equal(t, "hi", reshape.Str("hi").AsDisplayString())
}

func TestRawFromRawRoundTrip(t *testing.T) {
	v := obj("a", reshape.Int(1), "b", reshape.Arr([]reshape.Value{reshape.Str("x"), reshape.Bool(true), reshape.Null()}))
	got := reshape.FromRaw(v.Raw())
	assert.True(t, reshape.Equal(v, got))
}
