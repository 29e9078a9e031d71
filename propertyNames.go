package jsonschema

// evaluatePropertyNames validates every property name in the instance,
// treated as a string, against the "propertyNames" subschema.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-propertynames
func (c *Compiler) evaluatePropertyNames(schema *Schema, object map[string]any, instanceLoc string, sc *scope) *ValidationError {
	if schema.PropertyNames == nil {
		return nil
	}

	var causes []*ValidationError
	for propName := range object {
		cause, _ := c.validateNode(schema.PropertyNames, propName, joinPointer(instanceLoc, propName), sc)
		if cause != nil {
			causes = append(causes, cause)
		}
	}
	return group(instanceLoc, "/propertyNames", causes)
}
