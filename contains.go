package jsonschema

// evaluateContains checks that at least minContains (default 1) and at
// most maxContains (default unbounded) elements of an array instance
// match the "contains" subschema, marking every matching index as
// evaluated for "unevaluatedItems".
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-contains
func (c *Compiler) evaluateContains(schema *Schema, array []any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if schema.Contains == nil {
		return nil
	}

	var validCount int
	for i, item := range array {
		cause, _ := c.validateNode(schema.Contains, item, joinPointer(instanceLoc, itoa(i)), sc)
		if cause == nil {
			validCount++
			un.markItem(i)
		}
	}

	minContains := 1
	if schema.MinContains != nil {
		minContains = int(*schema.MinContains)
	}
	if validCount < minContains {
		return newErr(KindMinContains, instanceLoc, "/minContains", "value should contain at least {min_contains} matching items", map[string]any{
			"min_contains": minContains,
			"count":        validCount,
		})
	}

	if schema.MaxContains != nil && validCount > int(*schema.MaxContains) {
		return newErr(KindMaxContains, instanceLoc, "/maxContains", "value should contain no more than {max_contains} matching items", map[string]any{
			"max_contains": *schema.MaxContains,
			"count":        validCount,
		})
	}

	return nil
}
