package jsonschema

import (
	"fmt"
	"strings"
)

// evaluateDependentRequired checks that whenever a key of
// "dependentRequired" is present in the instance, every property name
// listed for that key is also present.
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-dependentrequired
func evaluateDependentRequired(schema *Schema, object map[string]any) *ValidationError {
	if schema.DependentRequired == nil {
		return nil
	}

	var missing []string
	for key, requiredProps := range schema.DependentRequired {
		if _, ok := object[key]; !ok {
			continue
		}
		for _, reqProp := range requiredProps {
			if _, ok := object[reqProp]; !ok {
				missing = append(missing, fmt.Sprintf("%q (required by %q)", reqProp, key))
			}
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return newErr(KindDependentRequired, "", "/dependentRequired", "some required property dependencies are missing: {missing_properties}", map[string]any{
		"missing_properties": strings.Join(missing, ", "),
	})
}
