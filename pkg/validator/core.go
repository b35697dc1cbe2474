package validator

import (
	"errors"
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// KindFormat marks a raw value that could not be parsed, or a required value left blank.
	KindFormat ErrorKind = "format"
	// KindBefore marks a value that is not before one of its bounds.
	KindBefore ErrorKind = "before"
	// KindAfter marks a value that is not after one of its bounds.
	KindAfter ErrorKind = "after"
)

// ValidationError is one failed check on one field. TranslationKey is empty
// for caller-supplied messages.
type ValidationError struct {
	Field             string
	Kind              ErrorKind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors keeps failures in the order they were found.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

func (ve ValidationErrors) Has(field string) bool {
	return len(ve.GetErrors(field)) > 0
}

// GetErrors returns the failures of field.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the messages of field.
func (ve ValidationErrors) Get(field string) []string {
	return collect(ve.GetErrors(field), func(e ValidationError) string { return e.Message })
}

// Kinds returns the kinds of field's failures.
func (ve ValidationErrors) Kinds(field string) []ErrorKind {
	return collect(ve.GetErrors(field), func(e ValidationError) ErrorKind { return e.Kind })
}

// Fields lists the failing fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, e := range ve {
		if _, ok := seen[e.Field]; !ok {
			seen[e.Field] = struct{}{}
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func collect[T any](errs []ValidationError, fn func(ValidationError) T) []T {
	if len(errs) == 0 {
		return nil
	}
	out := make([]T, len(errs))
	for i, e := range errs {
		out[i] = fn(e)
	}
	return out
}

// Rule is a deferred check and the error it reports on failure.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns the failures as ValidationErrors, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors finds ValidationErrors anywhere in err's chain.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if err != nil && errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
