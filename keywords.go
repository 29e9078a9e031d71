package jsonschema

import "regexp"

// compileKeywords populates every remaining field of sch from obj, the
// raw schema object, enqueueing a pool slot for every nested subschema it
// finds along the way. It runs after $ref/$recursiveRef/$dynamicRef have
// already been handled by compileSchema, and after the $ref-overrides
// short-circuit (if any) has already returned.
func (c *Compiler) compileKeywords(obj map[string]any, sch *Schema, loc string, d *Draft, baseURI string, r *root) error {
	applyMetadata(obj, sch)

	if av, ok := obj["$anchor"].(string); ok {
		sch.Anchor = av
	}
	if av, ok := obj["$dynamicAnchor"].(string); ok {
		sch.DynamicAnchor = av
	}
	if idv, ok := obj[d.IDKeyword].(string); ok {
		sch.ID = idv
	}
	if sv, ok := obj["$schema"].(string); ok {
		sch.Schema = sv
	}
	if cv, ok := obj["$comment"].(string); ok {
		sch.Comment = cv
	}

	compileType(obj, sch)
	compileEnum(obj, sch)
	compileConst(obj, sch)
	compileNumeric(obj, sch, d)
	if err := compileString(obj, sch); err != nil {
		return &CompileError{Code: ErrSchemaCompilation, Location: loc, Cause: err}
	}
	compileArrayBounds(obj, sch, d)
	compileObjectBounds(obj, sch, d)
	compileFormat(c, obj, sch)
	c.compileContent(obj, sch, loc, d)

	c.compileDefs(obj, sch, loc)
	c.compileApplicators(obj, sch, loc, d)
	c.compileArrayApplicators(obj, sch, loc, d)
	c.compileObjectApplicators(obj, sch, loc, d)

	return nil
}

func applyMetadata(obj map[string]any, sch *Schema) {
	if v, ok := obj["title"].(string); ok {
		sch.Title = &v
	}
	if v, ok := obj["description"].(string); ok {
		sch.Description = &v
	}
	if v, ok := obj["deprecated"].(bool); ok {
		sch.Deprecated = &v
	}
	if v, ok := obj["readOnly"].(bool); ok {
		sch.ReadOnly = &v
	}
	if v, ok := obj["writeOnly"].(bool); ok {
		sch.WriteOnly = &v
	}
	if v, ok := obj["examples"].([]any); ok {
		sch.Examples = v
	}
	if v, ok := obj["default"]; ok {
		sch.Default = v
	}
}

func compileType(obj map[string]any, sch *Schema) {
	switch v := obj["type"].(type) {
	case string:
		sch.Type = SchemaType{v}
	case []any:
		types := make(SchemaType, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
		sch.Type = types
	}
}

func compileEnum(obj map[string]any, sch *Schema) {
	if v, ok := obj["enum"].([]any); ok {
		sch.Enum = v
	}
}

func compileConst(obj map[string]any, sch *Schema) {
	if v, ok := obj["const"]; ok {
		sch.Const = &ConstValue{Value: v}
	}
}

func compileNumeric(obj map[string]any, sch *Schema, d *Draft) {
	if v, ok := obj["multipleOf"]; ok {
		sch.MultipleOf = NewRat(v)
	}
	if v, ok := obj["minimum"]; ok {
		sch.Minimum = NewRat(v)
	}
	if v, ok := obj["maximum"]; ok {
		sch.Maximum = NewRat(v)
	}

	if d.BoolExclusive {
		// draft4: exclusiveMinimum/Maximum are booleans modifying minimum/maximum.
		if exMin, ok := obj["exclusiveMinimum"].(bool); ok && exMin && sch.Minimum != nil {
			sch.ExclusiveMinimum = sch.Minimum
			sch.Minimum = nil
		}
		if exMax, ok := obj["exclusiveMaximum"].(bool); ok && exMax && sch.Maximum != nil {
			sch.ExclusiveMaximum = sch.Maximum
			sch.Maximum = nil
		}
		return
	}

	if v, ok := obj["exclusiveMinimum"]; ok {
		sch.ExclusiveMinimum = NewRat(v)
	}
	if v, ok := obj["exclusiveMaximum"]; ok {
		sch.ExclusiveMaximum = NewRat(v)
	}
}

func compileString(obj map[string]any, sch *Schema) error {
	if v, ok := obj["maxLength"].(float64); ok {
		sch.MaxLength = &v
	}
	if v, ok := obj["minLength"].(float64); ok {
		sch.MinLength = &v
	}
	if v, ok := obj["pattern"].(string); ok {
		re, err := regexp.Compile(v)
		if err != nil {
			return ErrInvalidSchemaType
		}
		sch.Pattern = re
		sch.PatternSrc = v
	}
	return nil
}

func compileArrayBounds(obj map[string]any, sch *Schema, d *Draft) {
	if v, ok := obj["maxItems"].(float64); ok {
		sch.MaxItems = &v
	}
	if v, ok := obj["minItems"].(float64); ok {
		sch.MinItems = &v
	}
	if v, ok := obj["uniqueItems"].(bool); ok {
		sch.UniqueItems = v
	}
	if d.HasMinMaxContains {
		if v, ok := obj["maxContains"].(float64); ok {
			sch.MaxContains = &v
		}
		if v, ok := obj["minContains"].(float64); ok {
			sch.MinContains = &v
		}
	}
}

func compileObjectBounds(obj map[string]any, sch *Schema, d *Draft) {
	if v, ok := obj["maxProperties"].(float64); ok {
		sch.MaxProperties = &v
	}
	if v, ok := obj["minProperties"].(float64); ok {
		sch.MinProperties = &v
	}
	if v, ok := obj["required"].([]any); ok {
		for _, r := range v {
			if s, ok := r.(string); ok {
				sch.Required = append(sch.Required, s)
			}
		}
	}
}

func compileFormat(c *Compiler, obj map[string]any, sch *Schema) {
	if v, ok := obj["format"].(string); ok {
		sch.Format = &v
		sch.FormatFn = c.formats[v]
	}
}

func (c *Compiler) compileContent(obj map[string]any, sch *Schema, loc string, d *Draft) {
	if v, ok := obj["contentEncoding"].(string); ok {
		sch.ContentEncoding = &v
	}
	if v, ok := obj["contentMediaType"].(string); ok {
		sch.ContentMediaType = &v
	}
	if d.HasContentSchema {
		if _, ok := obj["contentSchema"]; ok {
			idx := c.enqueue(joinLoc(loc, "contentSchema"))
			sch.ContentSchema = c.pool[idx]
		}
	}
}

func (c *Compiler) compileDefs(obj map[string]any, sch *Schema, loc string) {
	for _, key := range []string{"$defs", "definitions"} {
		defsV, ok := obj[key].(map[string]any)
		if !ok {
			continue
		}
		if sch.Defs == nil {
			sch.Defs = map[string]*Schema{}
		}
		for name := range defsV {
			idx := c.enqueue(joinLoc(loc, key, name))
			sch.Defs[name] = c.pool[idx]
		}
	}
}

// joinLoc appends one or more pointer tokens to a "base#pointer" location.
func joinLoc(loc string, tokens ...string) string {
	base, frag := splitFragment(loc)
	for _, t := range tokens {
		frag = joinPointer(frag, t)
	}
	return base + "#" + frag
}

func (c *Compiler) compileApplicators(obj map[string]any, sch *Schema, loc string, d *Draft) {
	enqList := func(key string) []*Schema {
		arr, ok := obj[key].([]any)
		if !ok {
			return nil
		}
		out := make([]*Schema, 0, len(arr))
		for i := range arr {
			idx := c.enqueue(joinLoc(loc, key, itoa(i)))
			out = append(out, c.pool[idx])
		}
		return out
	}
	sch.AllOf = enqList("allOf")
	sch.AnyOf = enqList("anyOf")
	sch.OneOf = enqList("oneOf")

	if _, ok := obj["not"]; ok {
		idx := c.enqueue(joinLoc(loc, "not"))
		sch.Not = c.pool[idx]
	}

	if d.HasIfThenElse {
		if _, ok := obj["if"]; ok {
			idx := c.enqueue(joinLoc(loc, "if"))
			sch.If = c.pool[idx]
		}
		if _, ok := obj["then"]; ok {
			idx := c.enqueue(joinLoc(loc, "then"))
			sch.Then = c.pool[idx]
		}
		if _, ok := obj["else"]; ok {
			idx := c.enqueue(joinLoc(loc, "else"))
			sch.Else = c.pool[idx]
		}
	}
}

func (c *Compiler) compileArrayApplicators(obj map[string]any, sch *Schema, loc string, d *Draft) {
	if d.HasPrefixItems {
		if arr, ok := obj["prefixItems"].([]any); ok {
			sch.PrefixItems = make([]*Schema, 0, len(arr))
			for i := range arr {
				idx := c.enqueue(joinLoc(loc, "prefixItems", itoa(i)))
				sch.PrefixItems = append(sch.PrefixItems, c.pool[idx])
			}
		}
		if _, ok := obj["items"]; ok {
			idx := c.enqueue(joinLoc(loc, "items"))
			sch.Items = c.pool[idx]
		}
	} else {
		switch v := obj["items"].(type) {
		case []any:
			sch.PrefixItems = make([]*Schema, 0, len(v))
			for i := range v {
				idx := c.enqueue(joinLoc(loc, "items", itoa(i)))
				sch.PrefixItems = append(sch.PrefixItems, c.pool[idx])
			}
			if _, ok := obj["additionalItems"]; ok {
				idx := c.enqueue(joinLoc(loc, "additionalItems"))
				sch.AdditionalItems = c.pool[idx]
			}
		case map[string]any, bool:
			idx := c.enqueue(joinLoc(loc, "items"))
			sch.Items = c.pool[idx]
		}
	}

	if d.HasContains {
		if _, ok := obj["contains"]; ok {
			idx := c.enqueue(joinLoc(loc, "contains"))
			sch.Contains = c.pool[idx]
		}
	}

	if d.HasUnevaluated {
		if _, ok := obj["unevaluatedItems"]; ok {
			idx := c.enqueue(joinLoc(loc, "unevaluatedItems"))
			sch.UnevaluatedItems = c.pool[idx]
		}
	}
}

func (c *Compiler) compileObjectApplicators(obj map[string]any, sch *Schema, loc string, d *Draft) {
	if props, ok := obj["properties"].(map[string]any); ok {
		sch.Properties = map[string]*Schema{}
		for name := range props {
			idx := c.enqueue(joinLoc(loc, "properties", name))
			sch.Properties[name] = c.pool[idx]
		}
	}

	if pp, ok := obj["patternProperties"].(map[string]any); ok {
		for pattern := range pp {
			re, err := regexp.Compile(pattern)
			if err != nil {
				continue
			}
			idx := c.enqueue(joinLoc(loc, "patternProperties", pattern))
			sch.PatternProperties = append(sch.PatternProperties, patternProperty{re: re, src: pattern, schema: c.pool[idx]})
		}
	}

	if _, ok := obj["additionalProperties"]; ok {
		idx := c.enqueue(joinLoc(loc, "additionalProperties"))
		sch.AdditionalProperties = c.pool[idx]
	}

	if d.HasPropertyNames {
		if _, ok := obj["propertyNames"]; ok {
			idx := c.enqueue(joinLoc(loc, "propertyNames"))
			sch.PropertyNames = c.pool[idx]
		}
	}

	if d.HasUnevaluated {
		if _, ok := obj["unevaluatedProperties"]; ok {
			idx := c.enqueue(joinLoc(loc, "unevaluatedProperties"))
			sch.UnevaluatedProperties = c.pool[idx]
		}
	}

	if d.HasDependentSchemas {
		if ds, ok := obj["dependentSchemas"].(map[string]any); ok {
			sch.DependentSchemas = map[string]*Schema{}
			for name := range ds {
				idx := c.enqueue(joinLoc(loc, "dependentSchemas", name))
				sch.DependentSchemas[name] = c.pool[idx]
			}
		}
		if dr, ok := obj["dependentRequired"].(map[string]any); ok {
			sch.DependentRequired = map[string][]string{}
			for name, v := range dr {
				if arr, ok := v.([]any); ok {
					for _, item := range arr {
						if s, ok := item.(string); ok {
							sch.DependentRequired[name] = append(sch.DependentRequired[name], s)
						}
					}
				}
			}
		}
		return
	}

	// Legacy draft4-7 "dependencies": each value is either a schema
	// (schema dependency) or an array of property names (required dependency).
	if deps, ok := obj["dependencies"].(map[string]any); ok {
		for name, v := range deps {
			switch dv := v.(type) {
			case []any:
				if sch.DependentRequired == nil {
					sch.DependentRequired = map[string][]string{}
				}
				for _, item := range dv {
					if s, ok := item.(string); ok {
						sch.DependentRequired[name] = append(sch.DependentRequired[name], s)
					}
				}
			default:
				if sch.DependentSchemas == nil {
					sch.DependentSchemas = map[string]*Schema{}
				}
				idx := c.enqueue(joinLoc(loc, "dependencies", name))
				sch.DependentSchemas[name] = c.pool[idx]
			}
		}
	}
}
