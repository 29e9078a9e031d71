package jsonschema

// Validate checks value against the compiled schema at idx, returning nil
// if it conforms or a ValidationError tree describing every violation
// otherwise. idx must come from a successful Compile call on this same
// Compiler; the pool it addresses is read-only once compiled, so Validate
// is safe to call concurrently from many goroutines.
func (c *Compiler) Validate(value any, idx SchemaIndex) *ValidationError {
	sch := c.pool[idx]
	cause, _ := c.validateNode(sch, value, "", nil)
	return cause
}

// validateNode is the recursive evaluator every keyword file calls back
// into for its subschemas. It returns the accumulated failure for sch
// against instance (nil if none), plus the uneval bookkeeping this node
// built up, for a parent applicator (allOf, $ref, ...) to merge.
func (c *Compiler) validateNode(sch *Schema, instance any, instanceLoc string, sc *scope) (*ValidationError, *uneval) {
	if sch.isFalse() {
		return newErr(KindFalseSchema, instanceLoc, "", "no value is allowed because the schema is false", nil), nil
	}
	if sch.isTrivialTrue() {
		return nil, nil
	}

	if sc != nil && sc.cycle(sch, instanceLoc) {
		return newErr(KindRefCycle, instanceLoc, "", "reference cycle detected while evaluating the instance", nil), nil
	}
	sc = sc.push(sch, instanceLoc)
	un := newUneval()

	var causes []*ValidationError

	if sch.Ref != nil {
		cause, subUn := c.validateNode(sch.Ref, instance, instanceLoc, sc)
		un.markAll(subUn)
		if cause != nil {
			causes = append(causes, cause)
		}
	}

	if sch.Draft.HasRecursiveRef && sch.RecursiveRef != nil {
		target := sch.RecursiveRef
		if sch.RecursiveRef.RecursiveAnchor {
			target = sc.resolveRecursive(sch.RecursiveRef)
		}
		cause, subUn := c.validateNode(target, instance, instanceLoc, sc)
		un.markAll(subUn)
		if cause != nil {
			causes = append(causes, cause)
		}
	}

	if sch.Draft.HasDynamicRef && sch.DynamicRef != nil {
		target := sch.DynamicRef
		if sch.DynamicRefAnchor != "" {
			if resolved := sc.resolveDynamic(sch.DynamicRefAnchor); resolved != nil {
				target = resolved
			}
		}
		cause, subUn := c.validateNode(target, instance, instanceLoc, sc)
		un.markAll(subUn)
		if cause != nil {
			causes = append(causes, cause)
		}
	}

	if cause := evaluateType(sch, instance); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateEnum(sch, instance); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if sch.Draft.HasConst {
		if cause := evaluateConst(sch, instance); cause != nil {
			causes = append(causes, withLoc(cause, instanceLoc))
		}
	}

	if cause := c.validateNumeric(sch, instance, instanceLoc); cause != nil {
		causes = append(causes, cause)
	}
	if cause := c.validateString(sch, instance, instanceLoc, sc); cause != nil {
		causes = append(causes, cause)
	}
	if array, ok := instance.([]any); ok {
		if cause := c.validateArray(sch, array, instanceLoc, sc, un); cause != nil {
			causes = append(causes, cause)
		}
	}
	if object, ok := instance.(map[string]any); ok {
		if cause := c.validateObject(sch, object, instanceLoc, sc, un); cause != nil {
			causes = append(causes, cause)
		}
	}

	if cause := c.evaluateAllOf(sch, instance, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	if len(sch.AnyOf) > 0 {
		if cause := c.evaluateAnyOf(sch, instance, instanceLoc, sc, un); cause != nil {
			causes = append(causes, cause)
		}
	}
	if len(sch.OneOf) > 0 {
		if cause := c.evaluateOneOf(sch, instance, instanceLoc, sc, un); cause != nil {
			causes = append(causes, cause)
		}
	}
	if sch.Not != nil {
		if cause := c.evaluateNot(sch, instance, instanceLoc, sc); cause != nil {
			causes = append(causes, cause)
		}
	}
	if sch.Draft.HasIfThenElse && sch.If != nil {
		if cause := c.evaluateConditional(sch, instance, instanceLoc, sc, un); cause != nil {
			causes = append(causes, cause)
		}
	}

	if sch.ContentEncoding != nil || sch.ContentMediaType != nil {
		if cause := c.evaluateContent(sch, instance, instanceLoc, sc); cause != nil {
			causes = append(causes, cause)
		}
	}

	// unevaluatedProperties/unevaluatedItems run last: every sibling
	// applicator above (properties, allOf, $ref, if/then/else, ...) has
	// already had a chance to mark what it accounted for.
	if sch.Draft.HasUnevaluated {
		if object, ok := instance.(map[string]any); ok && sch.UnevaluatedProperties != nil {
			if cause := c.evaluateUnevaluatedProperties(sch, object, instanceLoc, sc, un); cause != nil {
				causes = append(causes, cause)
			}
		}
		if array, ok := instance.([]any); ok && sch.UnevaluatedItems != nil {
			if cause := c.evaluateUnevaluatedItems(sch, array, instanceLoc, sc, un); cause != nil {
				causes = append(causes, cause)
			}
		}
	}

	return group(instanceLoc, sch.Location, causes), un
}

// withLoc returns a copy of cause with InstanceLocation set, since scalar
// evaluators (type, enum, const) are written instance-location-agnostic
// and leave it blank.
func withLoc(cause *ValidationError, instanceLoc string) *ValidationError {
	clone := *cause
	clone.InstanceLocation = instanceLoc
	return &clone
}

// validateNumeric groups every numeric-only keyword, skipping entirely
// when the instance is not a JSON number.
func (c *Compiler) validateNumeric(sch *Schema, instance any, instanceLoc string) *ValidationError {
	dataType := getDataType(instance)
	if dataType != "number" && dataType != "integer" {
		return nil
	}
	value := NewRat(instance)
	if value == nil {
		return nil
	}

	var causes []*ValidationError
	if cause := evaluateMultipleOf(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateMaximum(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateMinimum(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateExclusiveMaximum(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateExclusiveMinimum(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	return group(instanceLoc, sch.Location, causes)
}

// validateString groups every string-only keyword (length, pattern,
// format), skipping entirely when the instance is not a string.
func (c *Compiler) validateString(sch *Schema, instance any, instanceLoc string, sc *scope) *ValidationError {
	value, ok := instance.(string)
	if !ok {
		return nil
	}

	var causes []*ValidationError
	if cause := evaluateMinLength(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateMaxLength(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluatePattern(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := c.evaluateFormat(sch, value); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	return group(instanceLoc, sch.Location, causes)
}

// validateArray groups every array-only keyword.
func (c *Compiler) validateArray(sch *Schema, array []any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	var causes []*ValidationError
	if cause := evaluateMinItems(sch, array); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateMaxItems(sch, array); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateUniqueItems(sch, array); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := c.evaluatePrefixItems(sch, array, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	if cause := c.evaluateItems(sch, array, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	if sch.Draft.HasContains && sch.Contains != nil {
		if cause := c.evaluateContains(sch, array, instanceLoc, sc, un); cause != nil {
			causes = append(causes, cause)
		}
	}
	return group(instanceLoc, sch.Location, causes)
}

// validateObject groups every object-only keyword.
func (c *Compiler) validateObject(sch *Schema, object map[string]any, instanceLoc string, sc *scope, un *uneval) *ValidationError {
	var causes []*ValidationError
	if cause := evaluateMinProperties(sch, object); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateMaxProperties(sch, object); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateRequired(sch, object); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := evaluateDependentRequired(sch, object); cause != nil {
		causes = append(causes, withLoc(cause, instanceLoc))
	}
	if cause := c.evaluateProperties(sch, object, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	if cause := c.evaluatePatternProperties(sch, object, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	if cause := c.evaluateAdditionalProperties(sch, object, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	if sch.Draft.HasPropertyNames && sch.PropertyNames != nil {
		if cause := c.evaluatePropertyNames(sch, object, instanceLoc, sc); cause != nil {
			causes = append(causes, cause)
		}
	}
	if cause := c.evaluateDependentSchemas(sch, object, instanceLoc, sc, un); cause != nil {
		causes = append(causes, cause)
	}
	return group(instanceLoc, sch.Location, causes)
}
