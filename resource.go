package jsonschema

import "fmt"

// resource is a subtree of a root document that introduces its own base
// URI, either because it is the document root or because it carries an
// $id/id keyword. anchors and dynamicAnchors map plain-name anchors
// declared anywhere inside the resource (but not inside a nested
// resource) to the JSON Pointer, relative to the root document, of the
// schema object that declared them.
type resource struct {
	floc           string // JSON Pointer from the root document to this resource's base
	id             string // resolved absolute base URI
	anchors        map[string]string
	dynamicAnchors map[string]string
}

// subschemaField names a single keyword whose value is a nested schema or
// a container of nested schemas.
type subschemaField struct {
	key      string
	multiple bool // value is an array of schemas
	mapped   bool // value is an object whose values are schemas
}

// subschemaFields lists every keyword the given draft treats as holding
// subschemas, independent of keyword-specific compilation. It drives the
// resource/anchor scanner.
func subschemaFields(d *Draft) []subschemaField {
	fields := []subschemaField{
		{key: "not"},
		{key: "items"},
		{key: "additionalItems"},
		{key: "additionalProperties"},
		{key: "contains"},
		{key: "propertyNames"},
		{key: "properties", mapped: true},
		{key: "patternProperties", mapped: true},
		{key: "definitions", mapped: true},
		{key: "$defs", mapped: true},
		{key: "allOf", multiple: true},
		{key: "anyOf", multiple: true},
		{key: "oneOf", multiple: true},
	}
	if d.HasPrefixItems {
		fields = append(fields, subschemaField{key: "prefixItems", multiple: true})
	} else {
		fields = append(fields, subschemaField{key: "items", multiple: true})
	}
	if d.HasIfThenElse {
		fields = append(fields, subschemaField{key: "if"}, subschemaField{key: "then"}, subschemaField{key: "else"})
	}
	if d.HasDependentSchemas {
		fields = append(fields, subschemaField{key: "dependentSchemas", mapped: true})
	} else {
		fields = append(fields, subschemaField{key: "dependencies", mapped: true})
	}
	if d.HasUnevaluated {
		fields = append(fields, subschemaField{key: "unevaluatedProperties"}, subschemaField{key: "unevaluatedItems"})
	}
	if d.HasContentSchema {
		fields = append(fields, subschemaField{key: "contentSchema"})
	}
	return fields
}

// walkSubschemas invokes fn for every nested schema value directly
// reachable from node, with its JSON Pointer token path relative to node.
// It does not recurse past what fn itself chooses to do with each child.
func walkSubschemas(d *Draft, node map[string]any, fn func(child any, tokens []string)) {
	for _, f := range subschemaFields(d) {
		v, ok := node[f.key]
		if !ok {
			continue
		}
		switch {
		case f.multiple:
			arr, ok := v.([]any)
			if !ok {
				continue
			}
			for i, item := range arr {
				fn(item, []string{f.key, itoa(i)})
			}
		case f.mapped:
			obj, ok := v.(map[string]any)
			if !ok {
				continue
			}
			for k, item := range obj {
				fn(item, []string{f.key, k})
			}
		default:
			fn(v, []string{f.key})
		}
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// collectResources walks an entire root document and returns every
// resource (the root itself, plus every $id-bearing subschema) keyed by
// its JSON Pointer from the document root, along with each resource's
// locally declared anchors.
func collectResources(d *Draft, doc any, baseURI string) (map[string]*resource, error) {
	resources := map[string]*resource{
		"": {floc: "", id: baseURI, anchors: map[string]string{}, dynamicAnchors: map[string]string{}},
	}
	err := scanResource(d, doc, "", "", baseURI, resources)
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// scanLoc builds the "base#pointer" location string used in CompileErrors
// raised while scanning, mirroring canonicalLoc's format even though no
// *root exists yet at this stage of compilation.
func scanLoc(baseURI, floc string) string {
	if floc == "" {
		return baseURI
	}
	return baseURI + "#" + floc
}

// duplicateID reports the floc of the existing resource, other than the
// one at floc itself, that already resolves to id, if any.
func duplicateID(resources map[string]*resource, id, floc string) (string, bool) {
	for loc, res := range resources {
		if loc != floc && res.id == id {
			return loc, true
		}
	}
	return "", false
}

func scanResource(d *Draft, node any, floc string, currentResourceLoc string, baseURI string, resources map[string]*resource) error {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}

	cur := resources[currentResourceLoc]

	if idv, ok := obj[d.IDKeyword]; ok {
		if idStr, ok := idv.(string); ok && idStr != "" {
			base, frag := splitFragment(idStr)
			if base != "" {
				// New resource: resolves against the enclosing resource's base.
				resolved := resolveRelativeURI(cur.id, base)
				if other, dup := duplicateID(resources, resolved, floc); dup {
					return &CompileError{
						Code:     ErrDuplicateID,
						Location: scanLoc(baseURI, floc),
						Cause:    fmt.Errorf("id %q already declared at %q", resolved, scanLoc(baseURI, other)),
					}
				}
				currentResourceLoc = floc
				cur = &resource{floc: floc, id: resolved, anchors: map[string]string{}, dynamicAnchors: map[string]string{}}
				resources[floc] = cur
			}
			if frag != "" && isAnchorFragment(frag) && d.RefOverrides {
				// Legacy draft4-style named anchor via "id": "#frag".
				if other, dup := cur.anchors[frag]; dup && other != floc {
					return &CompileError{
						Code:     ErrDuplicateAnchor,
						Location: scanLoc(baseURI, floc),
						Cause:    fmt.Errorf("anchor %q already declared at %q", frag, scanLoc(baseURI, other)),
					}
				}
				cur.anchors[frag] = floc
			}
		}
	}

	if av, ok := obj["$anchor"]; ok {
		if name, ok := av.(string); ok && name != "" {
			if other, dup := cur.anchors[name]; dup && other != floc {
				return &CompileError{
					Code:     ErrDuplicateAnchor,
					Location: scanLoc(baseURI, floc),
					Cause:    fmt.Errorf("anchor %q already declared at %q", name, scanLoc(baseURI, other)),
				}
			}
			cur.anchors[name] = floc
		}
	}
	if av, ok := obj["$dynamicAnchor"]; ok {
		if name, ok := av.(string); ok && name != "" {
			if other, dup := cur.anchors[name]; dup && other != floc {
				return &CompileError{
					Code:     ErrDuplicateAnchor,
					Location: scanLoc(baseURI, floc),
					Cause:    fmt.Errorf("anchor %q already declared at %q", name, scanLoc(baseURI, other)),
				}
			}
			cur.dynamicAnchors[name] = floc
			cur.anchors[name] = floc
		}
	}

	var walkErr error
	walkSubschemas(d, obj, func(child any, tokens []string) {
		if walkErr != nil {
			return
		}
		childLoc := floc
		for _, t := range tokens {
			childLoc = joinPointer(childLoc, t)
		}
		walkErr = scanResource(d, child, childLoc, currentResourceLoc, baseURI, resources)
	})
	return walkErr
}
