package jsonschema

import "errors"

// === Network and IO Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from the URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Serialization Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrJSONDecode is returned when JSON decoding fails.
	ErrJSONDecode = errors.New("json decode failed")

	// ErrXMLUnmarshal is returned when an "application/xml" contentMediaType
	// payload fails to parse.
	ErrXMLUnmarshal = errors.New("xml unmarshal failed")

	// ErrYAMLUnmarshal is returned when an "application/yaml" contentMediaType
	// payload fails to parse.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)

// === Schema Compilation Errors ===
// These are the Code values a *CompileError carries; see result.go.
var (
	// ErrSchemaCompilation is the Code of a *CompileError raised when a
	// keyword's value fails to compile.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrReferenceResolution is returned when a $ref cannot be resolved.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrGlobalReferenceResolution is returned when a reference cannot be
	// resolved even against the compiler's root store.
	ErrGlobalReferenceResolution = errors.New("global reference resolution failed")

	// ErrAnchorNotFound is returned when a $ref/$dynamicRef names a plain
	// anchor that no resource in the target root declares.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrJSONPointerSegmentDecode is returned when a fragment segment cannot be percent-decoded.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment decode failed")

	// ErrJSONPointerSegmentNotFound is returned when a JSON Pointer path does not resolve.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")

	// ErrInvalidSchemaType is returned when a schema value is neither a
	// JSON object nor a boolean.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrUnsupportedDraft is returned when $schema names a draft this
	// engine does not implement.
	ErrUnsupportedDraft = errors.New("unsupported draft")

	// ErrUnsupportedVocabulary is returned when $vocabulary requires
	// (required: true) a vocabulary URI this engine does not recognize.
	ErrUnsupportedVocabulary = errors.New("unsupported required vocabulary")

	// ErrDuplicateAnchor is returned when two subschemas in the same
	// resource declare the same $anchor/$dynamicAnchor name.
	ErrDuplicateAnchor = errors.New("duplicate anchor")

	// ErrDuplicateID is returned when two subschemas resolve to the same
	// absolute base URI within one root document.
	ErrDuplicateID = errors.New("duplicate $id")
)

// === Validation Errors ===
var (
	// ErrValueValidationFailed is a generic validation-failure sentinel.
	// *ValidationError does not wrap it; failures are told apart by Kind.
	ErrValueValidationFailed = errors.New("value validation failed")

	// ErrRefCycle names the condition where evaluating a $ref/$dynamicRef
	// would revisit the same schema against the same value already on the
	// evaluation scope stack. Validation reports that condition as a
	// *ValidationError of KindRefCycle, not as this sentinel.
	ErrRefCycle = errors.New("reference cycle detected")
)

// === Numeric Conversion Errors ===
var (
	// ErrRatConversion is returned when a JSON number cannot be parsed into an exact rational.
	ErrRatConversion = errors.New("rat conversion failed")

	// ErrUnsupportedRatType is returned when Rat is asked to wrap a non-numeric Go value.
	ErrUnsupportedRatType = errors.New("unsupported rat type")
)

// === Format Validation Errors ===
var (
	// ErrIPv6AddressNotEnclosed is returned when a URI's host is an IPv6
	// literal not wrapped in brackets.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address not enclosed in brackets")

	// ErrInvalidIPv6Address is returned when a bracketed URI host fails to
	// parse as an IPv6 address.
	ErrInvalidIPv6Address = errors.New("invalid ipv6 address")
)
