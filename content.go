package jsonschema

// evaluateContent decodes a string instance per "contentEncoding", parses
// it per "contentMediaType", and validates the result against
// "contentSchema", in that order. Any stage missing from the schema is
// skipped; a missing stage never blocks a later one from running against
// the raw string.
// References:
//   - https://json-schema.org/draft/2020-12/json-schema-validation#name-contentencoding
//   - https://json-schema.org/draft/2020-12/json-schema-validation#name-contentmediatype
//   - https://json-schema.org/draft/2020-12/json-schema-validation#name-contentschema
func (c *Compiler) evaluateContent(schema *Schema, instance any, instanceLoc string, sc *scope) *ValidationError {
	str, ok := instance.(string)
	if !ok {
		return nil
	}

	content := []byte(str)
	if schema.ContentEncoding != nil {
		decoder, exists := c.decoders[*schema.ContentEncoding]
		if !exists {
			return newErr(KindContentEncoding, instanceLoc, "/contentEncoding", "unsupported encoding '{encoding}'", map[string]any{
				"encoding": *schema.ContentEncoding,
			})
		}
		decoded, err := decoder(str)
		if err != nil {
			return newErr(KindContentEncoding, instanceLoc, "/contentEncoding", "value is not valid {encoding}-encoded content", map[string]any{
				"encoding": *schema.ContentEncoding,
			})
		}
		content = decoded
	}

	var parsed any = content
	if schema.ContentMediaType != nil {
		unmarshal, exists := c.mediaTypes[*schema.ContentMediaType]
		if !exists {
			return newErr(KindContentMediaType, instanceLoc, "/contentMediaType", "unsupported media type '{media_type}'", map[string]any{
				"media_type": *schema.ContentMediaType,
			})
		}
		v, err := unmarshal(content)
		if err != nil {
			return newErr(KindContentMediaType, instanceLoc, "/contentMediaType", "value does not match media type '{media_type}'", map[string]any{
				"media_type": *schema.ContentMediaType,
			})
		}
		parsed = v
	}

	if schema.ContentSchema == nil {
		return nil
	}
	cause, _ := c.validateNode(schema.ContentSchema, parsed, instanceLoc, sc)
	return cause
}
