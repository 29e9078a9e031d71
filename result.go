package jsonschema

import (
	"fmt"
	"strings"

	i18n "github.com/kaptinlin/go-i18n"
)

// Kind closes the set of reasons a ValidationError can exist for. A
// caller pattern-matching on Kind never needs a default case for an
// engine-internal failure. KindSchema, KindReference and KindContains are
// declared but not produced by Validate; every other Kind is.
type Kind string

const (
	KindGroup                Kind = "group"
	KindSchema               Kind = "schema"
	KindReference            Kind = "reference"
	KindRefCycle             Kind = "ref_cycle"
	KindFalseSchema          Kind = "false_schema"
	KindType                 Kind = "type"
	KindEnum                 Kind = "enum"
	KindConst                Kind = "const"
	KindFormat               Kind = "format"
	KindMinProperties        Kind = "min_properties"
	KindMaxProperties        Kind = "max_properties"
	KindAdditionalProperties Kind = "additional_properties"
	KindRequired             Kind = "required"
	KindDependentRequired    Kind = "dependent_required"
	KindMinItems             Kind = "min_items"
	KindMaxItems             Kind = "max_items"
	KindContains             Kind = "contains"
	KindMinContains          Kind = "min_contains"
	KindMaxContains          Kind = "max_contains"
	KindUniqueItems          Kind = "unique_items"
	KindAdditionalItems      Kind = "additional_items"
	KindMinLength            Kind = "min_length"
	KindMaxLength            Kind = "max_length"
	KindPattern              Kind = "pattern"
	KindContentEncoding      Kind = "content_encoding"
	KindContentMediaType     Kind = "content_media_type"
	KindMinimum              Kind = "minimum"
	KindMaximum              Kind = "maximum"
	KindExclusiveMinimum     Kind = "exclusive_minimum"
	KindExclusiveMaximum     Kind = "exclusive_maximum"
	KindMultipleOf           Kind = "multiple_of"
	KindNot                  Kind = "not"
	KindAllOf                Kind = "all_of"
	KindAnyOf                Kind = "any_of"
	KindOneOf                Kind = "one_of"
)

// ValidationError is one node of the hierarchical failure tree Validate
// produces. A Kind of KindGroup has no meaning of its own: it exists only
// to carry two or more Causes. Every other Kind is a leaf failure, though
// it may still carry Causes (e.g. KindAllOf carries the causes that made
// an allOf branch fail).
type ValidationError struct {
	Kind             Kind
	KeywordPath      string // the failing keyword, e.g. "/type"
	InstanceLocation string // e.g. "/foo"
	SchemaURL        string // populated for KindSchema/KindReference
	Message          string
	Params           map[string]any
	Causes           []*ValidationError
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.InstanceLocation != "" {
		return fmt.Sprintf("%s: %s", e.InstanceLocation, e.Message)
	}
	return e.Message
}

// Localize renders the error through a Localizer drawn from the engine's
// embedded bundle (see GetI18n), keyed by Kind the same way locales/*.json
// is keyed.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if e == nil {
		return ""
	}
	if localizer != nil {
		return localizer.Get(string(e.Kind), i18n.Vars(e.Params))
	}
	return e.Error()
}

// Flatten walks the error tree and returns every leaf (non-group) error
// in depth-first order, the shape most CLIs and test assertions want.
func (e *ValidationError) Flatten() []*ValidationError {
	if e == nil {
		return nil
	}
	if e.Kind != KindGroup && len(e.Causes) == 0 {
		return []*ValidationError{e}
	}
	var out []*ValidationError
	if e.Kind != KindGroup {
		out = append(out, e)
	}
	for _, c := range e.Causes {
		out = append(out, c.Flatten()...)
	}
	return out
}

func newErr(kind Kind, instanceLoc, keywordPath, message string, params map[string]any) *ValidationError {
	return &ValidationError{Kind: kind, InstanceLocation: instanceLoc, KeywordPath: keywordPath, Message: message, Params: params}
}

// group collapses a slice of child errors per the engine's aggregation
// rule: zero children is no error, one child is returned as-is (no
// needless wrapper), two or more are wrapped in a KindGroup parent.
func group(instanceLoc, keywordPath string, errs []*ValidationError) *ValidationError {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &ValidationError{
			Kind:             KindGroup,
			InstanceLocation: instanceLoc,
			KeywordPath:      keywordPath,
			Message:          fmt.Sprintf("%d validation errors occurred", len(errs)),
			Params:           map[string]any{"count": len(errs)},
			Causes:           errs,
		}
	}
}

// wrap builds a parent ValidationError of the given Kind carrying causes,
// or nil if causes is empty. Unlike group, it always keeps the parent's
// Kind even for a single cause, since the keywords that use it (allOf,
// anyOf, oneOf, additionalItems, additionalProperties) carry information
// beyond their causes: which keyword rejected the instance.
func wrap(kind Kind, instanceLoc, keywordPath, message string, params map[string]any, causes []*ValidationError) *ValidationError {
	if len(causes) == 0 {
		return nil
	}
	return &ValidationError{
		Kind:             kind,
		InstanceLocation: instanceLoc,
		KeywordPath:      keywordPath,
		Message:          message,
		Params:           params,
		Causes:           causes,
	}
}

// CompileError is the terminal failure Compile returns. It never
// describes an instance value — only the schema document the compiler
// was trying to turn into pool nodes.
type CompileError struct {
	Code     error // one of the Err* sentinels in errors.go
	Location string
	Cause    error
}

func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.Error())
	if e.Location != "" {
		b.WriteString(" at ")
		b.WriteString(e.Location)
	}
	if e.Cause != nil && e.Cause != e.Code {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *CompileError) Unwrap() error { return e.Code }
