// Package jsonschema implements a JSON Schema validator spanning drafts
// 4, 6, 7, 2019-09, and 2020-12, compiling schema documents into a flat,
// index-addressed pool and validating instances against any pool entry.
package jsonschema
