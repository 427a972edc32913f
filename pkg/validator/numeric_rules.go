package validator

import "fmt"

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value > zero
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be greater than 0 (got %v)", value),
			TranslationKey: "validation.positive",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
