package jsonschema

// evaluatePrefixItems validates each leading array element against the
// subschema at the same position in "prefixItems" (2020-12), or the
// tuple form of legacy "items": [...] (draft4 through 2019-09). Elements
// beyond len(PrefixItems) are left to evaluateItems.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-prefixitems
func (c *Compiler) evaluatePrefixItems(schema *Schema, array []any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if len(schema.PrefixItems) == 0 {
		return nil
	}

	var causes []*ValidationError
	for i, itemSchema := range schema.PrefixItems {
		if i >= len(array) {
			break
		}
		cause, _ := c.validateNode(itemSchema, array[i], joinPointer(instanceLoc, itoa(i)), sc)
		if cause != nil {
			causes = append(causes, cause)
		} else {
			un.markItem(i)
		}
	}
	return group(instanceLoc, "/prefixItems", causes)
}
