package jsonschema

// evaluateOneOf validates instance against "oneOf", succeeding only when
// exactly one branch matches. Every branch runs regardless of earlier
// matches, since a second match must still be detected and reported.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-oneof
func (c *Compiler) evaluateOneOf(schema *Schema, instance any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if len(schema.OneOf) == 0 {
		return nil
	}
	var matched []int
	var matchedUn *uneval
	var causes []*ValidationError
	for i, sub := range schema.OneOf {
		cause, subUn := c.validateNode(sub, instance, instanceLoc, sc)
		if cause == nil {
			matched = append(matched, i)
			matchedUn = subUn
		} else {
			causes = append(causes, cause)
		}
	}

	switch len(matched) {
	case 1:
		un.markAll(matchedUn)
		return nil
	case 0:
		return wrap(KindOneOf, instanceLoc, "/oneOf", "value should match exactly one oneOf schema but matches none", nil, causes)
	default:
		return newErr(KindOneOf, instanceLoc, "/oneOf", "value should match exactly one oneOf schema but matches {count}", map[string]any{
			"count": len(matched),
		})
	}
}
