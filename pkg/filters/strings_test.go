package filters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidfilters/pkg/filters"
)

func TestCamelCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"coming-soon_page": "ComingSoonPage",
		"hello world":      "HelloWorld",
		"already Camel":    "AlreadyCamel",
		"keep mIxed":       "KeepMIxed",
		"élan vital":       "ÉlanVital",
		"--":               "",
		"":                 "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, filters.CamelCase(in))
		})
	}
}

func TestHandleize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello-world", filters.Handleize("Hello World"))
	assert.Equal(t, "100-cotton-t-shirt", filters.Handleize("100% Cotton T-Shirt"))
}

func TestPluralize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "item", filters.Pluralize(1, "item", "items"))
	assert.Equal(t, "items", filters.Pluralize(0, "item", "items"))
	assert.Equal(t, "items", filters.Pluralize(2, "item", "items"))
	assert.Equal(t, "items", filters.Pluralize(1.5, "item", "items"))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes compactly without html escaping", func(t *testing.T) {
		t.Parallel()
		got, err := filters.JSON(map[string]any{"b": "<x>", "a": 1})
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":"<x>"}`, got)
	})

	t.Run("unsupported value", func(t *testing.T) {
		t.Parallel()
		_, err := filters.JSON(make(chan int))
		assert.ErrorIs(t, err, filters.ErrInvalidJSON)
	})
}

func TestWeightWithUnit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.5 kg", filters.WeightWithUnit(1.5, "kg"))
	assert.Equal(t, "2 lb", filters.WeightWithUnit(2, ""))
}

func TestHexToRGBA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		color    string
		opacity  float64
		expected string
	}{
		{name: "shorthand", color: "#812", opacity: 0.5, expected: "rgba(136,17,34,0.5)"},
		{name: "full", color: "ffffff", opacity: 1, expected: "rgba(255,255,255,1)"},
		{name: "opacity clamped", color: "#000000", opacity: 2, expected: "rgba(0,0,0,1)"},
		{name: "zero opacity", color: "#abc", opacity: 0, expected: "rgb(170,187,204)"},
		{name: "wrong length", color: "#12345", opacity: 1, expected: "rgb(0,0,0)"},
		{name: "not hex", color: "zzzzzz", opacity: 1, expected: "rgb(0,0,0)"},
		{name: "empty", color: "", opacity: 1, expected: "rgb(0,0,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, filters.HexToRGBA(tt.color, tt.opacity))
		})
	}
}
