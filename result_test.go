package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationOutputs(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://example.com/foo-object", map[string]any{
		"type":  "object",
		"title": "foo object schema",
		"properties": map[string]any{
			"foo": map[string]any{
				"type":      "string",
				"pattern":   "^foo ",
				"minLength": float64(10),
			},
		},
		"required":             []any{"foo"},
		"additionalProperties": false,
	}))
	idx, err := c.Compile("http://example.com/foo-object")
	require.NoError(t, err)

	tests := []struct {
		description string
		instance    any
		valid       bool
	}{
		{"valid input matching schema requirements", map[string]any{"foo": "foo bar baz baz"}, true},
		{"input missing required property foo", map[string]any{}, false},
		{"invalid additional property", map[string]any{"foo": "foo valid   ", "extra": "data"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := c.Validate(tt.instance, idx)
			if tt.valid {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
			}
		})
	}
}

func TestValidationErrorError(t *testing.T) {
	err := newErr(KindMinLength, "/foo", "/properties/foo/minLength", "string is too short", nil)
	assert.Equal(t, "/foo: string is too short", err.Error())

	topLevel := newErr(KindType, "", "/type", "wrong type", nil)
	assert.Equal(t, "wrong type", topLevel.Error())

	var nilErr *ValidationError
	assert.Equal(t, "", nilErr.Error())
}

func TestGroupCollapsesSingleCause(t *testing.T) {
	cause := newErr(KindMinLength, "/foo", "/properties/foo/minLength", "too short", nil)
	assert.Same(t, cause, group("/foo", "/properties/foo", []*ValidationError{cause}))
	assert.Nil(t, group("", "", nil))

	second := newErr(KindPattern, "/foo", "/properties/foo/pattern", "bad pattern", nil)
	grouped := group("/foo", "/properties/foo", []*ValidationError{cause, second})
	require.NotNil(t, grouped)
	assert.Equal(t, KindGroup, grouped.Kind)
	assert.Len(t, grouped.Causes, 2)
}

func TestWrapAlwaysKeepsKind(t *testing.T) {
	cause := newErr(KindType, "/0", "/allOf/0/type", "wrong type", nil)
	wrapped := wrap(KindAllOf, "/0", "/allOf", "value did not match every allOf schema", nil, []*ValidationError{cause})
	require.NotNil(t, wrapped)
	assert.Equal(t, KindAllOf, wrapped.Kind)
	assert.Len(t, wrapped.Causes, 1)

	assert.Nil(t, wrap(KindAllOf, "/0", "/allOf", "msg", nil, nil))
}

func TestFlatten(t *testing.T) {
	leaf1 := newErr(KindMinLength, "/foo", "/properties/foo/minLength", "too short", nil)
	leaf2 := newErr(KindPattern, "/foo", "/properties/foo/pattern", "bad pattern", nil)
	grouped := group("/foo", "/properties/foo", []*ValidationError{leaf1, leaf2})

	flat := grouped.Flatten()
	assert.Equal(t, []*ValidationError{leaf1, leaf2}, flat)

	assert.Nil(t, (*ValidationError)(nil).Flatten())
}

func TestCompileErrorError(t *testing.T) {
	err := &CompileError{Code: ErrUnsupportedDraft, Location: "http://example.com/schema"}
	assert.Equal(t, "unsupported draft at http://example.com/schema", err.Error())
	assert.ErrorIs(t, err, ErrUnsupportedDraft)
}

func TestLocalize(t *testing.T) {
	bundle, err := GetI18n()
	require.NoError(t, err)
	localizer := bundle.NewLocalizer("en")

	cause := newErr(KindRequired, "", "/required", "required property {property} is missing", map[string]any{"property": "foo"})
	msg := cause.Localize(localizer)
	assert.Contains(t, msg, "foo")

	var nilErr *ValidationError
	assert.Equal(t, "", nilErr.Localize(localizer))

	assert.Equal(t, cause.Error(), cause.Localize(nil))
}
