package reshape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/graftlang/reshape/pkg/reshape"
)

func TestResolveOutputNoTemplateReturnsWorking(t *testing.T) {
	working := obj("a", reshape.Int(1))
	got := reshape.ResolveOutput(reshape.EmptyObj(), working, reshape.Null(), false)
	assert.True(t, cmp.Equal(working, got, valueComparer))
}

func TestResolveOutputEmptyObjectTemplateReturnsWorking(t *testing.T) {
	working := obj("a", reshape.Int(1))
	got := reshape.ResolveOutput(reshape.EmptyObj(), working, reshape.EmptyObj(), true)
	assert.True(t, cmp.Equal(working, got, valueComparer))
}

func TestResolveOutputRootPrefix(t *testing.T) {
	root := obj("id", reshape.Str("r1"))
	working := obj("a", reshape.Int(1))
	template := obj("original_id", reshape.Str("$root.id"))
	got := reshape.ResolveOutput(root, working, template, true)
	assert.True(t, cmp.Equal(obj("original_id", reshape.Str("r1")), got, valueComparer))
}

func TestResolveOutputWorkingWhole(t *testing.T) {
	root := reshape.EmptyObj()
	working := obj("a", reshape.Int(1))
	got := reshape.ResolveOutput(root, working, reshape.Str("$working"), true)
	assert.True(t, cmp.Equal(working, got, valueComparer))
}

func TestResolveOutputLiteralString(t *testing.T) {
	got := reshape.ResolveOutput(reshape.EmptyObj(), reshape.EmptyObj(), reshape.Str("plain"), true)
	assert.True(t, cmp.Equal(reshape.Str("plain"), got, valueComparer))
}

func TestResolveOutputNestedObject(t *testing.T) {
	root := obj("id", reshape.Str("r1"))
	working := obj("name", reshape.Str("ava"))
	template := obj("meta", obj("id", reshape.Str("$root.id"), "name", reshape.Str("$working.name")))
	got := reshape.ResolveOutput(root, working, template, true)
	want := obj("meta", obj("id", reshape.Str("r1"), "name", reshape.Str("ava")))
	assert.True(t, cmp.Equal(want, got, valueComparer))
}
