package jsonschema

// evaluateAllOf validates instance against every subschema in "allOf",
// collecting one cause per failing branch and merging the uneval state of
// every branch (failing or not) into un, since even a failing branch may
// annotate properties/items a sibling keyword still needs to know about.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-allof
func (c *Compiler) evaluateAllOf(schema *Schema, instance any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if len(schema.AllOf) == 0 {
		return nil
	}
	var causes []*ValidationError
	for _, sub := range schema.AllOf {
		cause, subUn := c.validateNode(sub, instance, instanceLoc, sc)
		un.markAll(subUn)
		if cause != nil {
			causes = append(causes, cause)
		}
	}
	return wrap(KindAllOf, instanceLoc, "/allOf", "value does not match every allOf schema", nil, causes)
}
