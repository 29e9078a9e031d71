package jsonschema

// evaluateUnevaluatedItems validates every array index not already
// claimed by "prefixItems", "items", "contains", or a sibling applicator
// against the "unevaluatedItems" subschema. It must run after every
// other array keyword at this instance location has contributed to un.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-unevaluateditems
func (c *Compiler) evaluateUnevaluatedItems(schema *Schema, array []any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if schema.UnevaluatedItems == nil {
		return nil
	}

	var causes []*ValidationError
	for _, i := range un.remainingItems(array) {
		cause, _ := c.validateNode(schema.UnevaluatedItems, array[i], joinPointer(instanceLoc, itoa(i)), sc)
		un.markItem(i)
		if cause != nil {
			causes = append(causes, cause)
		}
	}
	return group(instanceLoc, "/unevaluatedItems", causes)
}
