package validator

import "strings"

// IsBlank reports whether value is empty once leading and trailing control
// characters and spaces (code points up to U+0020) are removed. Other Unicode
// whitespace such as U+00A0 counts as content.
func IsBlank(value string) bool {
	return strings.TrimFunc(value, isTrimmable) == ""
}

func isTrimmable(r rune) bool {
	return r <= ' '
}

// RequiredString validates that a string is not blank (see IsBlank).
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsBlank(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
