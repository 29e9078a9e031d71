package jsonschema

// evaluateConditional implements "if"/"then"/"else": "then" is only
// checked when "if" matches, "else" only when it does not. A schema with
// no "if" has nothing conditional to enforce.
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-if
func (c *Compiler) evaluateConditional(schema *Schema, instance any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	if schema.If == nil {
		return nil
	}

	ifCause, ifUn := c.validateNode(schema.If, instance, instanceLoc, sc)

	if ifCause == nil {
		un.markAll(ifUn)
		if schema.Then == nil {
			return nil
		}
		thenCause, thenUn := c.validateNode(schema.Then, instance, instanceLoc, sc)
		if thenCause != nil {
			return group(instanceLoc, "/then", []*ValidationError{thenCause})
		}
		un.markAll(thenUn)
		return nil
	}

	if schema.Else == nil {
		return nil
	}
	elseCause, elseUn := c.validateNode(schema.Else, instance, instanceLoc, sc)
	if elseCause != nil {
		return group(instanceLoc, "/else", []*ValidationError{elseCause})
	}
	un.markAll(elseUn)
	return nil
}
