package jsonschema

// evaluateItems validates array elements beyond the "prefixItems" prefix.
// Its meaning depends on the draft: from 2020-12 onward, "items" is the
// schema applied to every element after the prefix; in drafts 4 through
// 2019-09, a tuple-form "items":[...] (already captured as PrefixItems)
// leaves the remainder to "additionalItems", while a schema-form
// "items": {...} (captured as Items, with no PrefixItems) applies to
// every element instead.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-items
func (c *Compiler) evaluateItems(schema *Schema, array []any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	n := len(schema.PrefixItems)

	if schema.Draft.HasPrefixItems {
		if schema.Items == nil {
			return nil
		}
		var causes []*ValidationError
		for i := n; i < len(array); i++ {
			cause, _ := c.validateNode(schema.Items, array[i], joinPointer(instanceLoc, itoa(i)), sc)
			if cause != nil {
				causes = append(causes, cause)
			} else {
				un.markItem(i)
			}
		}
		return group(instanceLoc, "/items", causes)
	}

	var causes []*ValidationError
	if n > 0 {
		if schema.AdditionalItems == nil {
			return nil
		}
		for i := n; i < len(array); i++ {
			cause, _ := c.validateNode(schema.AdditionalItems, array[i], joinPointer(instanceLoc, itoa(i)), sc)
			if cause != nil {
				causes = append(causes, cause)
			} else {
				un.markItem(i)
			}
		}
		return wrap(KindAdditionalItems, instanceLoc, "/additionalItems", "one or more additional items do not match", nil, causes)
	}

	if schema.Items == nil {
		return nil
	}
	for i := range array {
		cause, _ := c.validateNode(schema.Items, array[i], joinPointer(instanceLoc, itoa(i)), sc)
		if cause != nil {
			causes = append(causes, cause)
		} else {
			un.markItem(i)
		}
	}
	return group(instanceLoc, "/items", causes)
}
