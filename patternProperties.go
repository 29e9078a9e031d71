package jsonschema

// evaluatePatternProperties validates every property whose name matches
// one of the compiled "patternProperties" regular expressions against
// that pattern's subschema, marking each matched name as evaluated.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-patternproperties
func (c *Compiler) evaluatePatternProperties(schema *Schema, object map[string]any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if len(schema.PatternProperties) == 0 {
		return nil
	}

	var causes []*ValidationError
	for propName, value := range object {
		for _, pp := range schema.PatternProperties {
			if !pp.re.MatchString(propName) {
				continue
			}
			un.markProp(propName)
			cause, _ := c.validateNode(pp.schema, value, joinPointer(instanceLoc, propName), sc)
			if cause != nil {
				causes = append(causes, cause)
			}
		}
	}
	return group(instanceLoc, "/patternProperties", causes)
}
