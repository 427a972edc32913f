package validator

// RequiredPtr validates that a pointer is not nil.
func RequiredPtr[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be nil",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
