package reshape_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/graftlang/reshape/pkg/reshape"
)

// valueComparer treats two Values as equal exactly when reshape.Equal does
// (unordered object keys), so go-cmp diffs never fail on map key order.
var valueComparer = cmp.Comparer(func(a, b reshape.Value) bool {
	return reshape.Equal(a, b)
})
