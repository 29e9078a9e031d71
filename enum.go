package jsonschema

import "reflect"

// evaluateEnum checks the instance against the schema's "enum" list.
// Draft2020-12: https://json-schema.org/draft/2020-12/json-schema-validation#name-enum
func evaluateEnum(schema *Schema, instance any) *ValidationError {
	if len(schema.Enum) == 0 {
		return nil
	}
	for _, v := range schema.Enum {
		if reflect.DeepEqual(instance, v) {
			return nil
		}
	}
	return newErr(KindEnum, "", "/enum", "value should match one of the values specified by the enum", nil)
}
