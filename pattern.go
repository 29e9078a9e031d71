package jsonschema

// evaluatePattern checks instance against the schema's "pattern" regular
// expression, compiled once at compile time (see keywords.go compileString).
// Draft2020-12: https://json-schema.org/draft/2020-12/json-schema-validation#name-pattern
func evaluatePattern(schema *Schema, instance string) *ValidationError {
	if schema.Pattern == nil {
		return nil
	}
	if !schema.Pattern.MatchString(instance) {
		return newErr(KindPattern, "", "/pattern", "value does not match the required pattern {pattern}", map[string]any{
			"pattern": schema.PatternSrc,
			"value":   instance,
		})
	}
	return nil
}
