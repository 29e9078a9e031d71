package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePatternProperties(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/pattern-properties", map[string]any{
		"type": "object",
		"patternProperties": map[string]any{
			"^S_": map[string]any{"type": "string"},
			"^I_": map[string]any{"type": "integer"},
		},
	})
	assert.Nil(t, c.Validate(map[string]any{"S_name": "alice", "I_age": float64(30)}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"S_name": float64(1)}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"I_age": "old"}, idx))
}

func TestValidateAdditionalPropertiesFalse(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/additional-properties-false", map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"name": map[string]any{"type": "string"}},
		"patternProperties":    map[string]any{"^x-": map[string]any{"type": "string"}},
		"additionalProperties": false,
	})
	assert.Nil(t, c.Validate(map[string]any{"name": "a", "x-custom": "b"}, idx))
	got := c.Validate(map[string]any{"name": "a", "extra": "c"}, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindAdditionalProperties, got.Kind)
}

func TestValidateAdditionalPropertiesSchema(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/additional-properties-schema", map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"name": map[string]any{"type": "string"}},
		"additionalProperties": map[string]any{"type": "integer"},
	})
	assert.Nil(t, c.Validate(map[string]any{"name": "a", "age": float64(1)}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"name": "a", "age": "nope"}, idx))
}

func TestValidatePropertyNames(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/property-names", map[string]any{
		"type":          "object",
		"propertyNames": map[string]any{"pattern": "^[a-z]+$"},
	})
	assert.Nil(t, c.Validate(map[string]any{"abc": float64(1)}, idx))
	got := c.Validate(map[string]any{"ABC": float64(1)}, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindPattern, got.Kind)
}

func TestValidateDependentRequired(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/dependent-required", map[string]any{
		"type": "object",
		"dependentRequired": map[string]any{
			"credit_card": []any{"billing_address"},
		},
	})
	assert.Nil(t, c.Validate(map[string]any{"credit_card": "123", "billing_address": "addr"}, idx))
	assert.Nil(t, c.Validate(map[string]any{}, idx))
	got := c.Validate(map[string]any{"credit_card": "123"}, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindDependentRequired, got.Kind)
}

func TestValidateDependentSchemas(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/dependent-schemas", map[string]any{
		"type": "object",
		"dependentSchemas": map[string]any{
			"membership": map[string]any{
				"properties": map[string]any{"tier": map[string]any{"type": "string"}},
				"required":   []any{"tier"},
			},
		},
	})
	assert.Nil(t, c.Validate(map[string]any{"membership": "gold", "tier": "gold"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"membership": "gold"}, idx))
	assert.Nil(t, c.Validate(map[string]any{}, idx))
}

func TestValidateContentEncoding(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/content", map[string]any{
		"type":            "string",
		"contentEncoding": "base64",
	})
	assert.Nil(t, c.Validate("aGVsbG8=", idx))
	got := c.Validate("not-base64!!", idx)
	require.NotNil(t, got)
	assert.Equal(t, KindContentEncoding, got.Kind)
}

func TestValidateContentMediaTypeJSON(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/content-json", map[string]any{
		"type":             "string",
		"contentMediaType": "application/json",
	})
	assert.Nil(t, c.Validate(`{"a":1}`, idx))
	got := c.Validate(`not json`, idx)
	require.NotNil(t, got)
	assert.Equal(t, KindContentMediaType, got.Kind)
}

func TestValidateFormatAssertionModes(t *testing.T) {
	annotateOnly, idxAnnotate := compileDoc(t, "http://example.com/format-annotate", map[string]any{
		"type":   "string",
		"format": "date",
	})
	assert.Nil(t, annotateOnly.Validate("not-a-date", idxAnnotate))

	c := NewCompiler().AssertFormat(true)
	require.NoError(t, c.AddResource("http://example.com/format-assert", map[string]any{
		"type":   "string",
		"format": "date",
	}))
	idx, err := c.Compile("http://example.com/format-assert")
	require.NoError(t, err)
	assert.Nil(t, c.Validate("2024-01-15", idx))
	assert.NotNil(t, c.Validate("not-a-date", idx))
}

func TestValidateMultipleFailuresGroup(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/multi-fail", map[string]any{
		"type":      "string",
		"minLength": float64(10),
		"pattern":   "^[a-z]+$",
	})
	got := c.Validate("AB", idx)
	require.NotNil(t, got)
	assert.Equal(t, KindGroup, got.Kind)
	assert.Len(t, got.Causes, 2)
}

func TestValidateNestedInstanceLocations(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/nested-location", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"user": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"age": map[string]any{"type": "integer"},
				},
			},
		},
	})
	got := c.Validate(map[string]any{"user": map[string]any{"age": "old"}}, idx)
	require.NotNil(t, got)
	flat := got.Flatten()
	var found bool
	for _, e := range flat {
		if e.Kind == KindType && e.InstanceLocation == "/user/age" {
			found = true
		}
	}
	assert.True(t, found, "expected a type failure at /user/age, got %+v", flat)
}

func TestValidateArrayItemInstanceLocation(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/array-item-location", map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	})
	got := c.Validate([]any{float64(1), "two", float64(3)}, idx)
	require.NotNil(t, got)
	flat := got.Flatten()
	var found bool
	for _, e := range flat {
		if e.Kind == KindType && e.InstanceLocation == "/1" {
			found = true
		}
	}
	assert.True(t, found, "expected a type failure at /1, got %+v", flat)
}
