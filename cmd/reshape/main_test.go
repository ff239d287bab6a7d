package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsYAMLPath(t *testing.T) {
	assert.True(t, isYAMLPath("config.yaml"))
	assert.True(t, isYAMLPath("config.yml"))
	assert.False(t, isYAMLPath("config.json"))
	assert.False(t, isYAMLPath(""))
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "stdin", displayPath(""))
	assert.Equal(t, "stdin", displayPath("-"))
	assert.Equal(t, "doc.json", displayPath("doc.json"))
}

func TestResolveColor(t *testing.T) {
	assert.True(t, resolveColor("on"))
	assert.False(t, resolveColor("off"))
}

func TestNormalizeYAMLWidensInts(t *testing.T) {
	decoded := map[string]interface{}{
		"count": 3,
		"items": []interface{}{1, 2},
		"nested": map[string]interface{}{
			"n": 4,
		},
	}
	got := normalizeYAML(decoded).(map[string]interface{})
	assert.Equal(t, float64(3), got["count"])
	items := got["items"].([]interface{})
	assert.Equal(t, float64(1), items[0])
	nested := got["nested"].(map[string]interface{})
	assert.Equal(t, float64(4), nested["n"])
}
