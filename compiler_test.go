package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const remoteSchemaURL = "https://json-schema.org/draft/2020-12/schema"

func TestCompileWithID(t *testing.T) {
	c := NewCompiler()
	idx, err := c.Compile("http://example.com/schema")
	_ = idx
	require.Error(t, err, "no resource registered for that URL, should fail to fetch")

	require.NoError(t, c.AddResource("http://example.com/schema", map[string]any{
		"$id":        "http://example.com/schema",
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
		"required":   []any{"name"},
	}))
	idx, err = c.Compile("http://example.com/schema")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/schema", c.schemaAt(idx).ID)
}

func TestValidateRemoteSchema(t *testing.T) {
	c := NewCompiler()
	idx, err := c.Compile(remoteSchemaURL)
	require.NoError(t, err, "built-in loader should serve the well-known meta-schema")
	assert.True(t, c.Contains(idx))
}

func TestCompileCache(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/cached", map[string]any{
		"type": "object",
	}))
	idx1, err := c.Compile("http://example.com/cached")
	require.NoError(t, err)
	idx2, err := c.Compile("http://example.com/cached")
	require.NoError(t, err)
	assert.Equal(t, idx1, idx2, "a second Compile for the same location returns the same index")
}

func TestResolveReferencesAcrossCompileOrder(t *testing.T) {
	for _, order := range []string{"parent-first", "child-first"} {
		t.Run(order, func(t *testing.T) {
			c := NewCompiler()
			require.NoError(t, c.AddResource("http://example.com/child", map[string]any{
				"$id":        "http://example.com/child",
				"type":       "object",
				"properties": map[string]any{"key": map[string]any{"type": "string"}},
			}))
			require.NoError(t, c.AddResource("http://example.com/parent", map[string]any{
				"$id":        "http://example.com/parent",
				"type":       "object",
				"properties": map[string]any{"child": map[string]any{"$ref": "http://example.com/child"}},
			}))

			var parentIdx SchemaIndex
			var err error
			if order == "parent-first" {
				parentIdx, err = c.Compile("http://example.com/parent")
				require.NoError(t, err)
				_, err = c.Compile("http://example.com/child")
				require.NoError(t, err)
			} else {
				_, err = c.Compile("http://example.com/child")
				require.NoError(t, err)
				parentIdx, err = c.Compile("http://example.com/parent")
				require.NoError(t, err)
			}

			valid := c.Validate(map[string]any{"child": map[string]any{"key": "hi"}}, parentIdx)
			assert.Nil(t, valid)

			invalid := c.Validate(map[string]any{"child": "not-an-object"}, parentIdx)
			assert.NotNil(t, invalid)

			wrongType := c.Validate(map[string]any{"child": map[string]any{"key": false}}, parentIdx)
			assert.NotNil(t, wrongType)
		})
	}
}

func TestAssertFormat(t *testing.T) {
	c := NewCompiler().AssertFormat(true)
	require.NoError(t, c.AddResource("http://example.com/email", map[string]any{
		"type":   "string",
		"format": "email",
	}))
	idx, err := c.Compile("http://example.com/email")
	require.NoError(t, err)

	assert.NotNil(t, c.Validate("not-an-email", idx))
	assert.Nil(t, c.Validate("alice@example.com", idx))
}

func TestFormatAnnotationOnlyByDefault(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/email", map[string]any{
		"type":   "string",
		"format": "email",
	}))
	idx, err := c.Compile("http://example.com/email")
	require.NoError(t, err)
	assert.Nil(t, c.Validate("not-an-email", idx), "format is advisory until AssertFormat(true)")
}

func TestRegisterContentEncoding(t *testing.T) {
	c := NewCompiler()
	c.RegisterContentEncoding("upper", func(s string) ([]byte, error) {
		return []byte(strings.ToUpper(s)), nil
	})
	_, exists := c.decoders["upper"]
	assert.True(t, exists)
}

func TestRegisterContentMediaType(t *testing.T) {
	c := NewCompiler()
	c.RegisterContentMediaType("test/type", func(b []byte) (any, error) {
		return string(b), nil
	})
	_, exists := c.mediaTypes["test/type"]
	assert.True(t, exists)
}

func TestRegisterLoader(t *testing.T) {
	c := NewCompiler()
	c.RegisterLoader("test", newHTTPLoader())
	_, exists := c.loaders["test"]
	assert.True(t, exists)
}

func TestRegisterFormat(t *testing.T) {
	c := NewCompiler().AssertFormat(true)
	c.RegisterFormat("always-fail", func(any) bool { return false })
	require.NoError(t, c.AddResource("http://example.com/custom-format", map[string]any{
		"type":   "string",
		"format": "always-fail",
	}))
	idx, err := c.Compile("http://example.com/custom-format")
	require.NoError(t, err)
	assert.NotNil(t, c.Validate("anything", idx))
}

func TestDefaultDraft(t *testing.T) {
	c := NewCompiler().DefaultDraft(Draft4)
	require.NoError(t, c.AddResource("http://example.com/draft4-implicit", map[string]any{
		"type":             "number",
		"exclusiveMinimum": true,
		"minimum":          float64(0),
	}))
	idx, err := c.Compile("http://example.com/draft4-implicit")
	require.NoError(t, err)
	assert.NotNil(t, c.Validate(float64(0), idx), "draft4 boolean exclusiveMinimum should reject the boundary value")
	assert.Nil(t, c.Validate(float64(1), idx))
}
