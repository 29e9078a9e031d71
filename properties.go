package jsonschema

// evaluateProperties validates each property present in both the
// instance and "properties" against its subschema, marking each such
// name as evaluated; names the instance does not carry are skipped.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-properties
func (c *Compiler) evaluateProperties(schema *Schema, object map[string]any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if schema.Properties == nil {
		return nil
	}

	var causes []*ValidationError
	for propName, propSchema := range schema.Properties {
		value, exists := object[propName]
		if !exists {
			continue
		}
		un.markProp(propName)
		cause, _ := c.validateNode(propSchema, value, joinPointer(instanceLoc, propName), sc)
		if cause != nil {
			causes = append(causes, cause)
		}
	}
	return group(instanceLoc, "/properties", causes)
}
