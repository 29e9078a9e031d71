package jsonschema

import "strings"

// evaluateType checks the instance's JSON type against the schema's
// "type" keyword. A schema with no "type" constraint always passes.
// Draft2020-12: https://json-schema.org/draft/2020-12/json-schema-validation#name-type
func evaluateType(schema *Schema, instance any) *ValidationError {
	if len(schema.Type) == 0 {
		return nil
	}

	instanceType := getDataType(instance)
	for _, t := range schema.Type {
		if t == "number" && instanceType == "integer" {
			return nil
		}
		if instanceType == t {
			return nil
		}
	}

	return newErr(KindType, "", "/type", "value is {received} but should be {expected}", map[string]any{
		"expected": strings.Join(schema.Type, ", "),
		"received": instanceType,
	})
}
