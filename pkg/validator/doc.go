// Package validator provides small, composable validation rules and an
// error type that aggregates field-level failures.
//
// A Rule pairs a boolean Check with the ValidationError to report when the
// check fails. FirstFailure evaluates rules in sequence and stops at the
// first failing one, so later checks can assume earlier ones passed. Callers
// accumulate the failures into a ValidationErrors value and return it as the
// error.
//
// Core building blocks:
//   - Rule              – Check func plus error metadata
//   - ValidationError   – a single field failure with translation key/values
//   - ValidationErrors  – ordered slice that implements error
//   - Numeric           – generic constraint used by numeric helpers
//
// # Usage
//
//	var errs validator.ValidationErrors
//	if verr, failed := validator.FirstFailure(
//	    validator.RequiredString("name", name),
//	    validator.MatchesPattern("name", name, lettersOnly, "letters"),
//	); failed {
//	    errs.Add(verr)
//	}
//	if verr, failed := validator.FirstFailure(validator.Positive("id", id)); failed {
//	    errs.Add(verr)
//	}
//	if !errs.IsEmpty() {
//	    return errs
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed through errors.Is and can be
// recovered with errors.As or ExtractValidationErrors. Its Error method joins
// every "field: message" pair with ", " in the order they were recorded.
//
// Blank means empty after trimming code points up to U+0020 (see IsBlank);
// other Unicode whitespace counts as content.
//
// The package keeps no global state and every helper is goroutine-safe.
package validator
