package jsonschema

import "regexp"

// SchemaIndex is the stable handle a caller holds for a compiled schema.
// It is the position of the schema's node in the compiler's pool: once
// assigned it never changes, even though the node behind it may still be
// queued for compilation (see Compiler.enqueue).
type SchemaIndex int

// SchemaType is the parsed form of the "type" keyword: always a list,
// even when the schema spelled it as a single string.
type SchemaType []string

// ConstValue wraps the "const" keyword's value so a present-but-null
// const ("const": null) can be told apart from an absent one.
type ConstValue struct {
	Value any
}

// patternProperty pairs a compiled regular expression with the subschema
// it guards. Schema.PatternProperties lists them in the order the compiler
// iterated the decoded "patternProperties" map, not in declaration order.
type patternProperty struct {
	re     *regexp.Regexp
	src    string
	schema *Schema
}

// Schema is one compiled node in the pool: the flattened, fully-resolved
// form of a subschema at a single location, reachable by its SchemaIndex.
// A Schema's pointer fields (Ref, Items, Properties, ...) point at other
// nodes already allocated in the same pool; nodes are allocated up front
// by enqueue and filled in by compile, so cyclic schemas resolve to a
// valid, already-allocated pointer even before that pointer's own fields
// are populated.
type Schema struct {
	Idx      SchemaIndex
	Location string // canonical "base-url#json-pointer"
	Root     *root
	Draft    *Draft

	// Boolean holds the value of a `true`/`false` schema body; nil means
	// this node is an object schema instead.
	Boolean *bool

	ID      string
	Schema  string
	Comment string

	// Ref is the statically resolved target of "$ref". Draft4-7 schemas
	// ignore every sibling keyword when Ref is set (Draft.RefOverrides).
	Ref *Schema

	// RecursiveRef/DynamicRef hold the statically resolved fallback
	// target (the node $recursiveRef/$dynamicRef would point to with no
	// dynamic scope override) plus enough information for the validator
	// to re-resolve them dynamically against the active scope chain.
	RecursiveRef     *Schema
	RecursiveAnchor  bool
	DynamicRef       *Schema
	DynamicRefAnchor string // anchor name looked up per-scope at validate time

	Anchor        string
	DynamicAnchor string
	Defs          map[string]*Schema

	Type  SchemaType
	Enum  []any
	Const *ConstValue

	MultipleOf       *Rat
	Maximum          *Rat
	ExclusiveMaximum *Rat
	Minimum          *Rat
	ExclusiveMinimum *Rat

	MaxLength *float64
	MinLength *float64
	Pattern   *regexp.Regexp
	PatternSrc string

	MaxItems    *float64
	MinItems    *float64
	UniqueItems bool
	MaxContains *float64
	MinContains *float64

	MaxProperties     *float64
	MinProperties     *float64
	Required          []string
	DependentRequired map[string][]string

	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	If               *Schema
	Then             *Schema
	Else             *Schema
	DependentSchemas map[string]*Schema

	PrefixItems     []*Schema
	Items           *Schema
	AdditionalItems *Schema // draft4-2019 legacy boolean/schema form of "items" tuple overflow
	Contains        *Schema

	Properties           map[string]*Schema
	PatternProperties    []patternProperty
	AdditionalProperties *Schema
	PropertyNames        *Schema

	UnevaluatedProperties *Schema
	UnevaluatedItems      *Schema

	Format   *string
	FormatFn FormatFunc // nil when the name is unregistered; format then only annotates

	ContentEncoding  *string
	ContentMediaType *string
	ContentSchema    *Schema

	Title       *string
	Description *string
	Default     any
	Deprecated  *bool
	ReadOnly    *bool
	WriteOnly   *bool
	Examples    []any
}

// isTrivialTrue reports a literal `true` schema, which can never fail.
// The validator short-circuits on it to skip scope bookkeeping.
func (s *Schema) isTrivialTrue() bool {
	return s.Boolean != nil && *s.Boolean
}

func (s *Schema) isFalse() bool {
	return s.Boolean != nil && !*s.Boolean
}
