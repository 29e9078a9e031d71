package jsonschema

// evaluateAdditionalProperties validates every property not claimed by
// "properties" or "patternProperties" against the "additionalProperties"
// subschema, marking each as evaluated.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-additionalproperties
func (c *Compiler) evaluateAdditionalProperties(schema *Schema, object map[string]any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if schema.AdditionalProperties == nil {
		return nil
	}

	claimed := make(map[string]bool, len(schema.Properties))
	for propName := range schema.Properties {
		claimed[propName] = true
	}
	for propName := range object {
		if claimed[propName] {
			continue
		}
		for _, pp := range schema.PatternProperties {
			if pp.re.MatchString(propName) {
				claimed[propName] = true
				break
			}
		}
	}

	var causes []*ValidationError
	for propName, value := range object {
		if claimed[propName] {
			continue
		}
		un.markProp(propName)
		cause, _ := c.validateNode(schema.AdditionalProperties, value, joinPointer(instanceLoc, propName), sc)
		if cause != nil {
			causes = append(causes, cause)
		}
	}
	return wrap(KindAdditionalProperties, instanceLoc, "/additionalProperties", "one or more additional properties do not match the schema", nil, causes)
}
