package jsonschema

// evaluateFormat applies the schema's "format" keyword to instance. Format
// is annotation-only unless the Compiler was built with AssertFormat(true);
// an unregistered format name is likewise never an assertion failure,
// since this engine cannot know what that format requires.
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-format-annotation
func (c *Compiler) evaluateFormat(schema *Schema, instance any) *ValidationError {
	if schema.Format == nil || !c.assertFormat || schema.FormatFn == nil {
		return nil
	}
	if schema.FormatFn(instance) {
		return nil
	}
	return newErr(KindFormat, "", "/format", "value does not match format '{format}'", map[string]any{
		"format": *schema.Format,
	})
}
