package jsonschema

import "reflect"

// evaluateConst checks the instance against the schema's "const" value.
// Draft2020-12: https://json-schema.org/draft/2020-12/json-schema-validation#name-const
func evaluateConst(schema *Schema, instance any) *ValidationError {
	if schema.Const == nil {
		return nil
	}
	if !reflect.DeepEqual(instance, schema.Const.Value) {
		return newErr(KindConst, "", "/const", "value does not match the constant value", nil)
	}
	return nil
}
