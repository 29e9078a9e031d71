package jsonschema

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// FormatFunc validates a decoded instance value against a named format
// ("date-time", "email", ...). It receives the raw instance value; a
// predicate narrows it to the Go type it checks and accepts any other type.
type FormatFunc func(any) bool

// Compiler is the engine's compile-time half: it turns schema documents
// into a flat, append-only pool of compiled Schema nodes addressed by
// SchemaIndex, resolving every $ref/$recursiveRef/$dynamicRef/$anchor/$id
// along the way. A Compiler is not safe for concurrent Compile calls, but
// once compiled its pool is read-only and safe to Validate against from
// many goroutines.
type Compiler struct {
	roots   *rootStore
	loaders map[string]URLLoader

	decoders   map[string]func(string) ([]byte, error)
	mediaTypes map[string]func([]byte) (any, error)
	formats    map[string]FormatFunc

	defaultDraft *Draft
	assertFormat bool

	pool    []*Schema
	byLoc   map[string]SchemaIndex
	queue   []string // locations awaiting compilation, FIFO
	queued  map[string]bool
}

// NewCompiler creates a Compiler with the default draft2020-12 dialect,
// the built-in HTTP(S) loader, and the built-in JSON/XML/YAML content
// media types registered, mirroring the zero-config experience of the
// teacher's own NewCompiler.
func NewCompiler() *Compiler {
	c := &Compiler{
		loaders:      map[string]URLLoader{},
		decoders:     map[string]func(string) ([]byte, error){},
		mediaTypes:   map[string]func([]byte) (any, error){},
		formats:      map[string]FormatFunc{},
		defaultDraft: Draft2020,
		byLoc:        map[string]SchemaIndex{},
		queued:       map[string]bool{},
	}
	c.roots = newRootStore(c)
	c.setupLoaders()
	c.setupDecoders()
	c.setupMediaTypes()
	c.setupFormats()
	return c
}

func (c *Compiler) setupLoaders() {
	http := newHTTPLoader()
	c.loaders["http"] = http
	c.loaders["https"] = http
}

func (c *Compiler) setupDecoders() {
	c.decoders["base64"] = func(s string) ([]byte, error) {
		return base64.StdEncoding.DecodeString(s)
	}
}

func (c *Compiler) setupMediaTypes() {
	c.mediaTypes["application/json"] = func(b []byte) (any, error) {
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, ErrJSONDecode
		}
		return v, nil
	}
	c.mediaTypes["application/xml"] = func(b []byte) (any, error) {
		var v any
		if err := xml.Unmarshal(b, &v); err != nil {
			return nil, ErrXMLUnmarshal
		}
		return v, nil
	}
	c.mediaTypes["application/yaml"] = func(b []byte) (any, error) {
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, ErrYAMLUnmarshal
		}
		return v, nil
	}
}

func (c *Compiler) setupFormats() {
	for name, fn := range builtinFormats {
		c.formats[name] = fn
	}
}

// RegisterLoader registers a URLLoader for the given URL scheme, letting
// callers plug in custom transports (file://, s3://, an in-memory test
// double) the way the teacher registers custom decoders.
func (c *Compiler) RegisterLoader(scheme string, loader URLLoader) *Compiler {
	c.loaders[scheme] = loader
	return c
}

// RegisterFormat adds or overrides a named format predicate consulted by
// the "format" keyword when AssertFormat is enabled.
func (c *Compiler) RegisterFormat(name string, fn FormatFunc) *Compiler {
	c.formats[name] = fn
	return c
}

// RegisterContentEncoding adds or overrides a "contentEncoding" decoder.
func (c *Compiler) RegisterContentEncoding(name string, fn func(string) ([]byte, error)) *Compiler {
	c.decoders[name] = fn
	return c
}

// RegisterContentMediaType adds or overrides a "contentMediaType" decoder.
func (c *Compiler) RegisterContentMediaType(name string, fn func([]byte) (any, error)) *Compiler {
	c.mediaTypes[name] = fn
	return c
}

// AssertFormat turns "format" from an annotation-only keyword into one
// that produces validation errors. Off by default, per draft2019+'s own
// recommendation that format remain advisory unless a vocabulary or the
// caller explicitly opts in.
func (c *Compiler) AssertFormat(assert bool) *Compiler {
	c.assertFormat = assert
	return c
}

// DefaultDraft sets which dialect governs documents that declare no
// "$schema" of their own. Defaults to Draft2020.
func (c *Compiler) DefaultDraft(d *Draft) *Compiler {
	c.defaultDraft = d
	return c
}

// AddResource registers an already-parsed (or raw-bytes) document as the
// root for url, so Compile/$ref never has to fetch it over the network.
func (c *Compiler) AddResource(url string, doc any) error {
	if raw, ok := doc.([]byte); ok {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return ErrJSONDecode
		}
		doc = parsed
	}
	_, err := c.roots.add(url, doc, nil)
	return err
}

// enqueue reserves a SchemaIndex for loc, allocating its placeholder node
// immediately if this is the first time loc has been referenced. The
// index is final the moment this returns, even though the node's fields
// are only populated once the compile loop later pops loc off the queue.
func (c *Compiler) enqueue(loc string) SchemaIndex {
	if idx, ok := c.byLoc[loc]; ok {
		return idx
	}
	idx := SchemaIndex(len(c.pool))
	sch := &Schema{Idx: idx, Location: loc}
	c.pool = append(c.pool, sch)
	c.byLoc[loc] = idx
	if !c.queued[loc] {
		c.queue = append(c.queue, loc)
		c.queued[loc] = true
	}
	return idx
}

// Compile resolves url to a SchemaIndex, compiling it and everything it
// transitively references into the pool. A second Compile call for a
// location already in the pool returns the existing index without doing
// any further work. A failed Compile discards every node it added to the
// pool, so a later Compile of the same url starts afresh.
func (c *Compiler) Compile(url string) (SchemaIndex, error) {
	mark := len(c.pool)
	idx := c.enqueue(url)
	if err := c.drainQueue(); err != nil {
		for _, sch := range c.pool[mark:] {
			delete(c.byLoc, sch.Location)
			delete(c.queued, sch.Location)
		}
		c.pool = c.pool[:mark]
		c.queue = nil
		return 0, err
	}
	return idx, nil
}

func (c *Compiler) drainQueue() error {
	for len(c.queue) > 0 {
		loc := c.queue[0]
		c.queue = c.queue[1:]
		sch := c.pool[c.byLoc[loc]]
		if sch.Root != nil {
			continue // already compiled (can happen via enqueue during compileAt)
		}
		if err := c.compileAt(loc, sch); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileAt(loc string, sch *Schema) error {
	base, frag := splitFragment(loc)
	r, err := c.roots.resolve(base)
	if err != nil {
		return &CompileError{Code: ErrReferenceResolution, Location: loc, Cause: err}
	}
	value, _, err := r.locate(frag)
	if err != nil {
		return &CompileError{Code: err, Location: loc}
	}
	return c.compileSchema(r, loc, value, sch)
}

// compileSchema fills sch in place from a raw JSON value (bool or
// object), recursively enqueueing every nested subschema it discovers.
func (c *Compiler) compileSchema(r *root, loc string, value any, sch *Schema) error {
	sch.Root = r
	sch.Draft = r.draft

	if b, ok := value.(bool); ok {
		sch.Boolean = &b
		return nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return &CompileError{Code: ErrInvalidSchemaType, Location: loc}
	}

	d := r.draft
	res := r.resourceFor(mustFragment(loc))
	baseURI := res.id

	if err := c.compileVocabulary(obj, d, loc); err != nil {
		return err
	}

	if refV, ok := obj[refKeyword(d)]; ok {
		if refStr, ok := refV.(string); ok {
			target, err := c.resolveStatic(baseURI, refStr, r)
			if err != nil {
				return &CompileError{Code: ErrReferenceResolution, Location: loc, Cause: err}
			}
			sch.Ref = target
			if d.RefOverrides {
				return c.compileAnnotationsOnly(obj, sch, loc)
			}
		}
	}

	if d.HasRecursiveRef {
		if _, ok := obj["$recursiveAnchor"].(bool); ok {
			sch.RecursiveAnchor = obj["$recursiveAnchor"].(bool)
		}
		if rv, ok := obj["$recursiveRef"].(string); ok {
			target, err := c.resolveStatic(baseURI, rv, r)
			if err != nil {
				return &CompileError{Code: ErrReferenceResolution, Location: loc, Cause: err}
			}
			sch.RecursiveRef = target
		}
	}
	if d.HasDynamicRef {
		if dv, ok := obj["$dynamicRef"].(string); ok {
			target, err := c.resolveStatic(baseURI, dv, r)
			if err != nil {
				return &CompileError{Code: ErrReferenceResolution, Location: loc, Cause: err}
			}
			sch.DynamicRef = target
			if _, frag := splitFragment(dv); isAnchorFragment(frag) {
				sch.DynamicRefAnchor = frag
			}
		}
	}

	return c.compileKeywords(obj, sch, loc, d, baseURI, r)
}

// compileAnnotationsOnly fills only the metadata keywords a pre-2019
// schema with a $ref sibling is still allowed to carry ($id/$anchor were
// already consumed by the resource scanner; everything else is ignored
// per Draft.RefOverrides).
func (c *Compiler) compileAnnotationsOnly(obj map[string]any, sch *Schema, loc string) error {
	applyMetadata(obj, sch)
	return nil
}

func refKeyword(d *Draft) string { return "$ref" }

// resolveStatic resolves a $ref/$recursiveRef/$dynamicRef value at
// compile time to the SchemaIndex it names, enqueuing that location if
// this is the first time it has been seen, and returns the pool's node
// pointer for it (stable regardless of later pool growth).
func (c *Compiler) resolveStatic(baseURI, ref string, r *root) (*Schema, error) {
	target, err := resolveRef(c, r, baseURI, ref)
	if err != nil {
		return nil, err
	}
	idx := c.enqueue(target)
	return c.pool[idx], nil
}

func (c *Compiler) compileVocabulary(obj map[string]any, d *Draft, loc string) error {
	if !d.HasVocabulary {
		return nil
	}
	vocab, ok := obj["$vocabulary"].(map[string]any)
	if !ok {
		return nil
	}
	for uri, requiredV := range vocab {
		required, _ := requiredV.(bool)
		if required && !knownVocabularies[uri] {
			return &CompileError{Code: ErrUnsupportedVocabulary, Location: loc, Cause: fmt.Errorf("%s", uri)}
		}
	}
	return nil
}

// knownVocabularies lists the 2019-09/2020-12 vocabulary URIs this engine
// implements; an unrecognized vocabulary is accepted as long as it is not
// marked required.
var knownVocabularies = map[string]bool{
	"https://json-schema.org/draft/2020-12/vocab/core":              true,
	"https://json-schema.org/draft/2020-12/vocab/applicator":        true,
	"https://json-schema.org/draft/2020-12/vocab/validation":        true,
	"https://json-schema.org/draft/2020-12/vocab/meta-data":         true,
	"https://json-schema.org/draft/2020-12/vocab/format-annotation": true,
	"https://json-schema.org/draft/2020-12/vocab/format-assertion":  true,
	"https://json-schema.org/draft/2020-12/vocab/content":           true,
	"https://json-schema.org/draft/2019-09/vocab/core":              true,
	"https://json-schema.org/draft/2019-09/vocab/applicator":        true,
	"https://json-schema.org/draft/2019-09/vocab/validation":        true,
	"https://json-schema.org/draft/2019-09/vocab/meta-data":         true,
	"https://json-schema.org/draft/2019-09/vocab/format":            true,
	"https://json-schema.org/draft/2019-09/vocab/content":            true,
}

// mustFragment extracts the "#fragment" part of a canonical location for
// resourceFor lookups; locations enqueued by this compiler always carry
// an (often empty) fragment.
func mustFragment(loc string) string {
	_, frag := splitFragment(loc)
	if frag == "" || isAnchorFragment(frag) {
		return ""
	}
	return frag
}

// Contains reports whether idx names a node already present in the pool,
// i.e. whether a previous Compile call produced it.
func (c *Compiler) Contains(idx SchemaIndex) bool {
	return idx >= 0 && int(idx) < len(c.pool)
}

// schemaAt returns the compiled node behind idx; only valid after a
// successful Compile, per Contains.
func (c *Compiler) schemaAt(idx SchemaIndex) *Schema {
	return c.pool[idx]
}
