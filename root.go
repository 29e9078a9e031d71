package jsonschema

// root is one loaded document together with the resources and anchors
// discovered inside it. A root is immutable once added to the store: the
// compiler never mutates a root's doc or resources after collectResources
// has run, only the pool of compiled Schema nodes grows.
type root struct {
	url       string // canonical base URL this document was loaded under
	doc       any
	draft     *Draft
	resources map[string]*resource
	c         *Compiler
}

// compiler returns the engine this root belongs to, so scope resolution
// can look a location back up in the pool.
func (r *root) compiler() *Compiler { return r.c }

// resourceFor returns the resource whose base URI is loc's prefix, i.e.
// the nearest ancestor resource (possibly the root itself) of the
// subschema at JSON Pointer loc.
func (r *root) resourceFor(floc string) *resource {
	// Longest matching prefix wins; resources are keyed by JSON Pointer
	// from the document root, so a descendant's floc always has its
	// enclosing resource's floc as a string prefix.
	best := r.resources[""]
	bestLen := -1
	for key, res := range r.resources {
		if len(key) > bestLen && (key == "" || floc == key || len(floc) > len(key) && hasPointerPrefix(floc, key)) {
			best, bestLen = res, len(key)
		}
	}
	return best
}

func hasPointerPrefix(floc, prefix string) bool {
	if len(floc) < len(prefix) {
		return false
	}
	return floc[:len(prefix)] == prefix && (len(floc) == len(prefix) || floc[len(prefix)] == '/')
}

// rootStore caches every root document an engine has loaded, keyed by its
// canonical base URL (no fragment), and resolves "url#fragment" references
// against it, loading on miss via the compiler's registered loaders.
type rootStore struct {
	compiler *Compiler
	roots    map[string]*root
}

func newRootStore(c *Compiler) *rootStore {
	return &rootStore{compiler: c, roots: map[string]*root{}}
}

// add registers an already-parsed document as a root under the given
// base URL, scanning it for resources/anchors immediately so later $ref
// resolution never has to re-walk the document.
func (rs *rootStore) add(url string, doc any, d *Draft) (*root, error) {
	if d == nil {
		if obj, ok := doc.(map[string]any); ok {
			if sv, ok := obj["$schema"].(string); ok && DraftFromURL(sv) == nil {
				return nil, &CompileError{Code: ErrUnsupportedDraft, Location: url}
			}
		}
		d = rs.detectDraft(doc)
	}
	resources, err := collectResources(d, doc, url)
	if err != nil {
		return nil, err
	}
	r := &root{url: url, doc: doc, draft: d, resources: resources, c: rs.compiler}
	rs.roots[url] = r
	return r, nil
}

func (rs *rootStore) detectDraft(doc any) *Draft {
	if obj, ok := doc.(map[string]any); ok {
		if sv, ok := obj["$schema"].(string); ok {
			if d := DraftFromURL(sv); d != nil {
				return d
			}
		}
	}
	return rs.compiler.defaultDraft
}

// resolve loads (or reuses) the root document for base, a URL without a
// fragment, and returns it.
func (rs *rootStore) resolve(base string) (*root, error) {
	if r, ok := rs.roots[base]; ok {
		return r, nil
	}
	if isMetaSchemaURL(base) {
		return rs.add(base, map[string]any{"$schema": base}, metaSchemaDrafts[base])
	}
	doc, err := rs.load(base)
	if err != nil {
		return nil, err
	}
	return rs.add(base, doc, nil)
}

func (rs *rootStore) load(url string) (any, error) {
	scheme := getURLScheme(url)
	loader, ok := rs.compiler.loaders[scheme]
	if !ok {
		return nil, ErrNoLoaderRegistered
	}
	return loader.Load(url)
}

// locate resolves a "base#fragment" location to the raw JSON value it
// names (used by anchor/pointer resolution during compilation, before a
// Schema node exists for that location).
func (r *root) locate(fragment string) (any, []string, error) {
	if fragment == "" {
		return r.doc, nil, nil
	}
	if isAnchorFragment(fragment) {
		res := r.resources[""]
		for _, candidate := range r.resources {
			if floc, ok := candidate.anchors[fragment]; ok {
				v, tokens, err := r.atPointer(floc)
				if err != nil {
					return nil, nil, err
				}
				return v, tokens, nil
			}
		}
		_ = res
		return nil, nil, ErrAnchorNotFound
	}
	return r.atPointer(fragment)
}

func (r *root) atPointer(fragment string) (any, []string, error) {
	tokens, err := pointerTokens(fragment)
	if err != nil {
		return nil, nil, err
	}
	v, ok := resolvePointer(r.doc, tokens)
	if !ok {
		return nil, nil, ErrJSONPointerSegmentNotFound
	}
	return v, tokens, nil
}
