package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileDoc(t *testing.T, url string, doc map[string]any) (*Compiler, SchemaIndex) {
	t.Helper()
	c := NewCompiler()
	require.NoError(t, c.AddResource(url, doc))
	idx, err := c.Compile(url)
	require.NoError(t, err)
	return c, idx
}

func TestSchemaBooleanTrueAlwaysValid(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/true", true))
	idx, err := c.Compile("http://example.com/true")
	require.NoError(t, err)
	assert.Nil(t, c.Validate(nil, idx))
	assert.Nil(t, c.Validate(42, idx))
	assert.Nil(t, c.Validate("anything", idx))
}

func TestSchemaBooleanFalseAlwaysInvalid(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/false", false))
	idx, err := c.Compile("http://example.com/false")
	require.NoError(t, err)
	got := c.Validate("anything", idx)
	require.NotNil(t, got)
	assert.Equal(t, KindFalseSchema, got.Kind)
}

func TestSchemaTypeKeyword(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/type-string", map[string]any{"type": "string"})
	assert.Nil(t, c.Validate("hi", idx))
	assert.NotNil(t, c.Validate(42, idx))
}

func TestSchemaTypeList(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/type-list", map[string]any{
		"type": []any{"string", "null"},
	})
	assert.Nil(t, c.Validate("hi", idx))
	assert.Nil(t, c.Validate(nil, idx))
	assert.NotNil(t, c.Validate(42, idx))
}

func TestSchemaEnumAndConst(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/enum", map[string]any{
		"enum": []any{"red", "green", "blue"},
	})
	assert.Nil(t, c.Validate("red", idx))
	assert.NotNil(t, c.Validate("purple", idx))

	c2, idx2 := compileDoc(t, "http://example.com/const", map[string]any{
		"const": "fixed",
	})
	assert.Nil(t, c2.Validate("fixed", idx2))
	assert.NotNil(t, c2.Validate("other", idx2))
}

func TestSchemaNumericKeywords(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/numeric", map[string]any{
		"type":       "number",
		"minimum":    float64(0),
		"maximum":    float64(100),
		"multipleOf": float64(5),
	})
	assert.Nil(t, c.Validate(float64(25), idx))
	assert.NotNil(t, c.Validate(float64(-5), idx))
	assert.NotNil(t, c.Validate(float64(105), idx))
	assert.NotNil(t, c.Validate(float64(7), idx))
}

func TestSchemaDraft2020ExclusiveNumeric(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/exclusive-2020", map[string]any{
		"type":             "number",
		"exclusiveMinimum": float64(0),
	})
	assert.NotNil(t, c.Validate(float64(0), idx))
	assert.Nil(t, c.Validate(float64(0.01), idx))
}

func TestSchemaDraft4BooleanExclusiveNumeric(t *testing.T) {
	c := NewCompiler().DefaultDraft(Draft4)
	require.NoError(t, c.AddResource("http://example.com/exclusive-draft4", map[string]any{
		"type":             "number",
		"minimum":          float64(0),
		"exclusiveMinimum": true,
	}))
	idx, err := c.Compile("http://example.com/exclusive-draft4")
	require.NoError(t, err)
	assert.NotNil(t, c.Validate(float64(0), idx))
	assert.Nil(t, c.Validate(float64(0.01), idx))
}

func TestSchemaStringKeywords(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/string", map[string]any{
		"type":      "string",
		"minLength": float64(2),
		"maxLength": float64(5),
		"pattern":   "^[a-z]+$",
	})
	assert.Nil(t, c.Validate("abc", idx))
	assert.NotNil(t, c.Validate("a", idx))
	assert.NotNil(t, c.Validate("abcdefgh", idx))
	assert.NotNil(t, c.Validate("ABC", idx))
}

func TestSchemaArrayKeywords(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/array", map[string]any{
		"type":        "array",
		"minItems":    float64(1),
		"maxItems":    float64(3),
		"uniqueItems": true,
		"items":       map[string]any{"type": "integer"},
	})
	assert.Nil(t, c.Validate([]any{float64(1), float64(2)}, idx))
	assert.NotNil(t, c.Validate([]any{}, idx))
	assert.NotNil(t, c.Validate([]any{float64(1), float64(1)}, idx))
	assert.NotNil(t, c.Validate([]any{float64(1), "two"}, idx))
}

func TestSchemaLegacyTupleItems(t *testing.T) {
	c := NewCompiler().DefaultDraft(Draft7)
	require.NoError(t, c.AddResource("http://example.com/tuple-legacy", map[string]any{
		"items": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"additionalItems": false,
	}))
	idx, err := c.Compile("http://example.com/tuple-legacy")
	require.NoError(t, err)

	assert.Nil(t, c.Validate([]any{"a", float64(1)}, idx))
	assert.NotNil(t, c.Validate([]any{"a", float64(1), "extra"}, idx))
	assert.NotNil(t, c.Validate([]any{float64(1), "a"}, idx))
}

func TestSchemaPrefixItems2020(t *testing.T) {
	c := NewCompiler().DefaultDraft(Draft2020)
	require.NoError(t, c.AddResource("http://example.com/prefix-items", map[string]any{
		"prefixItems": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"items": false,
	}))
	idx, err := c.Compile("http://example.com/prefix-items")
	require.NoError(t, err)

	assert.Nil(t, c.Validate([]any{"a", float64(1)}, idx))
	assert.NotNil(t, c.Validate([]any{"a", float64(1), "extra"}, idx))
}

func TestSchemaObjectKeywords(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/object", map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
		"required":   []any{"name"},
	})
	assert.Nil(t, c.Validate(map[string]any{"name": "alice"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"name": float64(1)}, idx))
}

func TestSchemaLegacyDependenciesUnifiesIntoDependentFields(t *testing.T) {
	c := NewCompiler().DefaultDraft(Draft7)
	require.NoError(t, c.AddResource("http://example.com/dependencies-legacy", map[string]any{
		"type": "object",
		"dependencies": map[string]any{
			"credit_card": []any{"billing_address"},
			"membership":  map[string]any{"properties": map[string]any{"tier": map[string]any{"type": "string"}}},
		},
	}))
	idx, err := c.Compile("http://example.com/dependencies-legacy")
	require.NoError(t, err)

	assert.Nil(t, c.Validate(map[string]any{"credit_card": "123", "billing_address": "addr"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"credit_card": "123"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"membership": map[string]any{"tier": float64(1)}}, idx))
}

func TestSchemaIfThenElse(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/if-then-else", map[string]any{
		"if":   map[string]any{"properties": map[string]any{"country": map[string]any{"const": "US"}}},
		"then": map[string]any{"required": []any{"zip"}},
		"else": map[string]any{"required": []any{"postal"}},
	})
	assert.Nil(t, c.Validate(map[string]any{"country": "US", "zip": "12345"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"country": "US"}, idx))
	assert.Nil(t, c.Validate(map[string]any{"country": "CA", "postal": "A1A"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"country": "CA"}, idx))
}

func TestSchemaContainsMinMax(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/contains", map[string]any{
		"type":        "array",
		"contains":    map[string]any{"type": "integer"},
		"minContains": float64(2),
		"maxContains": float64(3),
	})
	assert.Nil(t, c.Validate([]any{float64(1), float64(2), "x"}, idx))
	assert.NotNil(t, c.Validate([]any{float64(1), "x"}, idx))
	assert.NotNil(t, c.Validate([]any{float64(1), float64(2), float64(3), float64(4)}, idx))
}

func TestSchemaUnevaluatedProperties(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/unevaluated-properties", map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
		"allOf": []any{
			map[string]any{"properties": map[string]any{"age": map[string]any{"type": "integer"}}},
		},
		"unevaluatedProperties": false,
	})
	assert.Nil(t, c.Validate(map[string]any{"name": "alice", "age": float64(30)}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"name": "alice", "extra": true}, idx))
}

func TestSchemaUnevaluatedItems(t *testing.T) {
	c, idx := compileDoc(t, "http://example.com/unevaluated-items", map[string]any{
		"type":                  "array",
		"prefixItems":           []any{map[string]any{"type": "string"}},
		"unevaluatedItems":      false,
	})
	assert.Nil(t, c.Validate([]any{"a"}, idx))
	assert.NotNil(t, c.Validate([]any{"a", "b"}, idx))
}

func TestSchemaCombinators(t *testing.T) {
	allOf, idxAllOf := compileDoc(t, "http://example.com/all-of", map[string]any{
		"allOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"minLength": float64(3)},
		},
	})
	assert.Nil(t, allOf.Validate("abcd", idxAllOf))
	assert.NotNil(t, allOf.Validate("ab", idxAllOf))

	anyOf, idxAnyOf := compileDoc(t, "http://example.com/any-of", map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	})
	assert.Nil(t, anyOf.Validate("hi", idxAnyOf))
	assert.Nil(t, anyOf.Validate(float64(1), idxAnyOf))
	assert.NotNil(t, anyOf.Validate(true, idxAnyOf))

	oneOf, idxOneOf := compileDoc(t, "http://example.com/one-of", map[string]any{
		"oneOf": []any{
			map[string]any{"type": "integer", "multipleOf": float64(2)},
			map[string]any{"type": "integer", "multipleOf": float64(3)},
		},
	})
	assert.Nil(t, oneOf.Validate(float64(4), idxOneOf))
	assert.NotNil(t, oneOf.Validate(float64(6), idxOneOf), "6 matches both branches, violating oneOf")
}

func TestSchemaRefResolution(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/ref-target", map[string]any{
		"$id":  "http://example.com/ref-target",
		"type": "string",
	}))
	require.NoError(t, c.AddResource("http://example.com/ref-source", map[string]any{
		"$id":        "http://example.com/ref-source",
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"$ref": "http://example.com/ref-target"}},
	}))
	idx, err := c.Compile("http://example.com/ref-source")
	require.NoError(t, err)
	assert.Nil(t, c.Validate(map[string]any{"name": "alice"}, idx))
	assert.NotNil(t, c.Validate(map[string]any{"name": float64(1)}, idx))
}

func TestSchemaRecursiveSelfReference(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/tree", map[string]any{
		"$id":  "http://example.com/tree",
		"type": "object",
		"properties": map[string]any{
			"value":    map[string]any{"type": "string"},
			"children": map[string]any{"type": "array", "items": map[string]any{"$ref": "#"}},
		},
	}))
	idx, err := c.Compile("http://example.com/tree")
	require.NoError(t, err)

	valid := map[string]any{
		"value": "root",
		"children": []any{
			map[string]any{"value": "child"},
		},
	}
	assert.Nil(t, c.Validate(valid, idx))

	invalid := map[string]any{
		"value":    "root",
		"children": []any{map[string]any{"value": float64(1)}},
	}
	assert.NotNil(t, c.Validate(invalid, idx))
}
