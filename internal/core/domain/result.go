package domain

import "strings"

// IdentityError is a structured, code-addressable error produced by
// validators and managers. Descriptions come from an ErrorDescriber so
// they can be localized or rephrased without touching the codes.
type IdentityError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// IdentityResult is the outcome of a manager operation: either success,
// or failure carrying an ordered, non-empty list of errors.
type IdentityResult struct {
	Succeeded bool            `json:"succeeded"`
	Errors    []IdentityError `json:"errors,omitempty"`
}

// OK returns a successful result.
func OK() IdentityResult {
	return IdentityResult{Succeeded: true}
}

// Fail returns a failed result carrying the given errors.
func Fail(errs ...IdentityError) IdentityResult {
	return IdentityResult{Errors: errs}
}

// Combine merges two results: success only if both succeeded, errors
// concatenated in order. A sequence of checks folds into one result
// this way.
func (r IdentityResult) Combine(other IdentityResult) IdentityResult {
	return IdentityResult{
		Succeeded: r.Succeeded && other.Succeeded,
		Errors:    append(append([]IdentityError(nil), r.Errors...), other.Errors...),
	}
}

// String renders the result for logs and CLI output.
func (r IdentityResult) String() string {
	if r.Succeeded {
		return "succeeded"
	}
	codes := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}
	return "failed: " + strings.Join(codes, ", ")
}
