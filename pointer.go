package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// splitFragment separates a URI into its base (before "#") and fragment
// (after "#", percent-encoding intact) parts. It is the fundamental
// operation behind both $ref resolution and resource/anchor scanning.
func splitFragment(uri string) (base, fragment string) {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[:i], uri[i+1:]
	}
	return uri, ""
}

// isAnchorFragment reports whether a fragment names a plain-name anchor
// ($anchor/$dynamicAnchor, or a legacy id="#frag" before draft6) as opposed
// to a JSON Pointer. JSON Pointers are empty or start with "/".
func isAnchorFragment(fragment string) bool {
	return fragment != "" && !strings.HasPrefix(fragment, "/")
}

// pointerTokens decodes a URI fragment into its JSON Pointer reference
// tokens: percent-decode the fragment first (URI encoding), then split on
// "/" and undo ~1/~0 escaping per RFC 6901 token-by-token.
func pointerTokens(fragment string) ([]string, error) {
	if fragment == "" || fragment == "/" {
		return nil, nil
	}
	decoded, err := url.PathUnescape(fragment)
	if err != nil {
		return nil, ErrJSONPointerSegmentDecode
	}
	return jsonpointer.Parse(decoded), nil
}

// resolvePointer walks raw JSON (maps/slices produced by goccy/go-json
// decoding into interface{}) following reference tokens. It reports false
// when a token names no member or element.
func resolvePointer(doc any, tokens []string) (any, bool) {
	cur := doc
	for _, tok := range tokens {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[tok]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// escapeToken encodes a single reference token for embedding in a JSON
// Pointer: "~" becomes "~0" and "/" becomes "~1".
func escapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// joinPointer builds a JSON Pointer string from a parent pointer and a
// single additional token, used while walking a schema document to build
// each subschema's canonical location.
func joinPointer(parent string, token string) string {
	return parent + "/" + escapeToken(token)
}
