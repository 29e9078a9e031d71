package jsonschema

import "strings"

// Draft captures the keyword surface and identification rules that differ
// between JSON Schema releases. A Draft never allocates state: it is a set
// of pure facts the compiler consults while turning a raw document into
// compiled Schema nodes.
type Draft struct {
	// Name is the human label, e.g. "draft4", "draft2020-12".
	Name string

	// Order ranks drafts by release (4, 6, 7, 2019, 2020); a higher value
	// is a newer draft.
	Order int

	// URL is the canonical $schema value for this draft's own meta-schema.
	URL string

	// IDKeyword is "id" for draft4 and "$id" from draft6 onward.
	IDKeyword string

	// BoolExclusive is true when exclusiveMinimum/exclusiveMaximum are
	// booleans modifying minimum/maximum (draft4) rather than standalone
	// numeric keywords (draft6+).
	BoolExclusive bool

	// RefOverrides is true when a $ref sibling keyword must be ignored
	// because $ref fully replaces the schema object (draft4-7 behavior;
	// 2019-09 dropped this rule).
	RefOverrides bool

	// HasRecursiveRef is true for 2019-09's $recursiveRef/$recursiveAnchor.
	HasRecursiveRef bool

	// HasDynamicRef is true for 2020-12's $dynamicRef/$dynamicAnchor.
	HasDynamicRef bool

	// HasPrefixItems is true from 2020-12 onward, where tuple validation
	// moved from "items": [...] to "prefixItems" and "items" became the
	// single schema applied to the remainder.
	HasPrefixItems bool

	// HasDependentSchemas is true from 2019-09 onward, where the legacy
	// "dependencies" keyword split into dependentRequired/dependentSchemas.
	HasDependentSchemas bool

	// HasUnevaluated is true from 2019-09 onward.
	HasUnevaluated bool

	// HasVocabulary is true for drafts that declare $vocabulary in their
	// meta-schema (2019-09, 2020-12).
	HasVocabulary bool

	// HasIfThenElse is true from draft7 onward.
	HasIfThenElse bool

	// HasContains is true from draft6 onward (also minContains/maxContains
	// from 2019-09 onward, gated separately by HasMinMaxContains).
	HasContains bool

	// HasMinMaxContains is true from 2019-09 onward.
	HasMinMaxContains bool

	// HasConst is true from draft6 onward.
	HasConst bool

	// HasPropertyNames/HasContentSchema etc follow the same pattern; a
	// draft that lacks a keyword simply never populates that Schema field,
	// so the validator naturally skips it.
	HasPropertyNames bool
	HasContentSchema bool
}

var (
	Draft4 = &Draft{
		Name: "draft4", Order: 4,
		URL:          "http://json-schema.org/draft-04/schema#",
		IDKeyword:    "id",
		BoolExclusive: true,
		RefOverrides: true,
	}
	Draft6 = &Draft{
		Name: "draft6", Order: 6,
		URL:          "http://json-schema.org/draft-06/schema#",
		IDKeyword:    "$id",
		RefOverrides: true,
		HasContains:  true,
		HasConst:     true,
	}
	Draft7 = &Draft{
		Name: "draft7", Order: 7,
		URL:              "http://json-schema.org/draft-07/schema#",
		IDKeyword:        "$id",
		RefOverrides:     true,
		HasContains:      true,
		HasConst:         true,
		HasIfThenElse:    true,
	}
	Draft2019 = &Draft{
		Name: "draft2019-09", Order: 2019,
		URL:                 "https://json-schema.org/draft/2019-09/schema",
		IDKeyword:           "$id",
		HasRecursiveRef:     true,
		HasDependentSchemas: true,
		HasUnevaluated:      true,
		HasVocabulary:       true,
		HasIfThenElse:       true,
		HasContains:         true,
		HasMinMaxContains:   true,
		HasConst:            true,
		HasPropertyNames:    true,
		HasContentSchema:    true,
	}
	Draft2020 = &Draft{
		Name: "draft2020-12", Order: 2020,
		URL:                 "https://json-schema.org/draft/2020-12/schema",
		IDKeyword:           "$id",
		HasDynamicRef:       true,
		HasPrefixItems:      true,
		HasDependentSchemas: true,
		HasUnevaluated:      true,
		HasVocabulary:       true,
		HasIfThenElse:       true,
		HasContains:         true,
		HasMinMaxContains:   true,
		HasConst:            true,
		HasPropertyNames:    true,
		HasContentSchema:    true,
	}
)

// drafts lists every supported release, newest first, for prefix matching.
var drafts = []*Draft{Draft2020, Draft2019, Draft7, Draft6, Draft4}

// DraftFromURL maps a $schema value (with or without a trailing fragment)
// to the Draft whose meta-schema URL it names, accepting http and https
// interchangeably. It returns nil for any other value.
func DraftFromURL(schemaURL string) *Draft {
	u := strings.TrimSuffix(schemaURL, "#")
	for _, d := range drafts {
		if strings.TrimSuffix(d.URL, "#") == u {
			return d
		}
	}
	// Tolerate http/https scheme mismatches, a common authoring slip.
	norm := strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
	for _, d := range drafts {
		dn := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSuffix(d.URL, "#"), "https://"), "http://")
		if dn == norm {
			return d
		}
	}
	return nil
}
