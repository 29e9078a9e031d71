package jsonschema

// resolveRef turns a $ref/$recursiveRef/$dynamicRef string, evaluated
// against baseURI inside root r, into the canonical "base#pointer"
// location the compiler should enqueue. It never compiles anything
// itself — it only determines where the referenced schema lives.
func resolveRef(c *Compiler, r *root, baseURI, ref string) (string, error) {
	base, frag := splitFragment(ref)

	var targetBase string
	switch {
	case base == "":
		targetBase = baseURI
	case isAbsoluteURI(base):
		targetBase = base
	default:
		targetBase = resolveRelativeURI(baseURI, base)
	}

	targetRoot, err := c.roots.resolve(targetBase)
	if err != nil {
		return "", err
	}

	if isAnchorFragment(frag) {
		floc, ok := findAnchor(targetRoot, frag)
		if !ok {
			return "", ErrAnchorNotFound
		}
		return canonicalLoc(targetRoot, floc), nil
	}

	if _, _, err := targetRoot.atPointer(frag); err != nil {
		return "", err
	}
	return canonicalLoc(targetRoot, frag), nil
}

// findAnchor searches every resource in a root for a plain-name anchor
// and returns the first match. Anchor names are unique only within one
// resource; when two resources of the root declare the same name, which
// of them is returned is not defined.
func findAnchor(r *root, name string) (string, bool) {
	for _, res := range r.resources {
		if floc, ok := res.anchors[name]; ok {
			return floc, true
		}
	}
	return "", false
}

// canonicalLoc builds the "base#pointer" string used as a pool key.
func canonicalLoc(r *root, floc string) string {
	if floc == "" {
		return r.url
	}
	return r.url + "#" + floc
}
