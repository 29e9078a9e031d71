package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordRequiredKind(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/required-kind", map[string]any{
		"type":     "object",
		"required": []any{"name", "age"},
	})
	got := c.Validate(map[string]any{"name": "a"}, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindRequired, got.Kind)
}

func TestKeywordMinMaxPropertiesKind(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/min-max-properties", map[string]any{
		"type":          "object",
		"minProperties": float64(1),
		"maxProperties": float64(2),
	})
	tooFew := c.Validate(map[string]any{}, idx)
	require.NotNil(t, tooFew)
	assert.Equal(t, KindMinProperties, tooFew.Kind)

	tooMany := c.Validate(map[string]any{"a": 1, "b": 2, "c": 3}, idx)
	require.NotNil(t, tooMany)
	assert.Equal(t, KindMaxProperties, tooMany.Kind)

	assert.Nil(t, c.Validate(map[string]any{"a": 1}, idx))
}

func TestKeywordUniqueItemsKind(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/unique-items-kind", map[string]any{
		"type":        "array",
		"uniqueItems": true,
	})
	got := c.Validate([]any{float64(1), float64(2), float64(1)}, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindUniqueItems, got.Kind)
	assert.Nil(t, c.Validate([]any{float64(1), float64(2)}, idx))
}

func TestKeywordContainsDefaultMinOne(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/contains-default", map[string]any{
		"type":     "array",
		"contains": map[string]any{"type": "integer"},
	})
	got := c.Validate([]any{"a", "b"}, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindMinContains, got.Kind)
	assert.Nil(t, c.Validate([]any{"a", float64(1)}, idx))
}

func TestKeywordNumericExclusiveKinds(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/exclusive-kinds", map[string]any{
		"type":             "number",
		"exclusiveMinimum": float64(0),
		"exclusiveMaximum": float64(10),
	})
	belowMin := c.Validate(float64(0), idx)
	require.NotNil(t, belowMin)
	assert.Equal(t, KindExclusiveMinimum, belowMin.Kind)

	aboveMax := c.Validate(float64(10), idx)
	require.NotNil(t, aboveMax)
	assert.Equal(t, KindExclusiveMaximum, aboveMax.Kind)
}

func TestKeywordMultipleOfKind(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/multiple-of-kind", map[string]any{
		"type":       "number",
		"multipleOf": float64(0.5),
	})
	assert.Nil(t, c.Validate(float64(1.5), idx))
	got := c.Validate(float64(1.4), idx)
	require.NotNil(t, got)
	assert.Equal(t, KindMultipleOf, got.Kind)
}

func TestRefCycleDetection(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/ref-cycle", map[string]any{
		"$id":   "http://example.com/ref-cycle",
		"$defs": map[string]any{"self": map[string]any{"$ref": "#"}},
		"$ref":  "#/$defs/self",
	}))
	idx, err := c.Compile("http://example.com/ref-cycle")
	require.NoError(t, err)

	got := c.Validate(map[string]any{}, idx)
	require.NotNil(t, got)
	flat := got.Flatten()
	var sawCycle bool
	for _, e := range flat {
		if e.Kind == KindRefCycle {
			sawCycle = true
		}
	}
	assert.True(t, sawCycle, "expected a ref_cycle error somewhere in the tree, got %+v", flat)
}

func TestAnchorResolution(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/anchor", map[string]any{
		"$id": "http://example.com/anchor",
		"$defs": map[string]any{
			"positive": map[string]any{"$anchor": "positive", "type": "number", "minimum": float64(0)},
		},
		"properties": map[string]any{
			"count": map[string]any{"$ref": "#positive"},
		},
	}))
	idx, err := c.Compile("http://example.com/anchor")
	require.NoError(t, err)
	assert.Nil(t, c.Validate(map[string]any{"count": float64(5)}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"count": float64(-5)}, idx))
}

func TestCompilerContains(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/contains-check", map[string]any{"type": "string"}))
	idx, err := c.Compile("http://example.com/contains-check")
	require.NoError(t, err)
	assert.True(t, c.Contains(idx))

	other := NewCompiler()
	assert.False(t, other.Contains(idx), "a Compiler with an empty pool contains no index")
}
