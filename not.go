package jsonschema

// evaluateNot validates instance against "not", failing if the subschema
// matches. "not" never contributes annotations: a branch that passes
// "not" by failing to match carries no evaluated properties/items worth
// keeping.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-not
func (c *Compiler) evaluateNot(schema *Schema, instance any, instanceLoc string, sc *scope) *ValidationError {
	if schema.Not == nil {
		return nil
	}
	cause, _ := c.validateNode(schema.Not, instance, instanceLoc, sc)
	if cause == nil {
		return newErr(KindNot, instanceLoc, "/not", "value should not match the not schema", nil)
	}
	return nil
}
