package jsonschema

// evaluateDependentSchemas validates the whole object instance against
// the subschema registered for each present property key in
// "dependentSchemas".
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-dependentschemas
func (c *Compiler) evaluateDependentSchemas(schema *Schema, object map[string]any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if len(schema.DependentSchemas) == 0 {
		return nil
	}

	var causes []*ValidationError
	for propName, depSchema := range schema.DependentSchemas {
		if _, ok := object[propName]; !ok {
			continue
		}
		cause, subUn := c.validateNode(depSchema, object, instanceLoc, sc)
		un.markAll(subUn)
		if cause != nil {
			causes = append(causes, cause)
		}
	}
	return group(instanceLoc, "/dependentSchemas", causes)
}
