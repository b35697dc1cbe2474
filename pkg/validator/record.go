package validator

import "github.com/dmitrymomot/datecheck/pkg/temporal"

// Record is the host object being validated.
//
// RawValue returns what was assigned to the attribute before any parsing.
// TypedValue returns the value the host managed to parse from it, if any.
// FieldValue returns the typed value of any field on the record; it backs
// field-reference restrictions and must not fall back to the raw value.
type Record interface {
	RawValue(attribute string) any
	TypedValue(attribute string) (temporal.Value, bool)
	FieldValue(name string) any
	AddError(attribute string, kind ErrorKind, message string)
}

// DetailedRecord is implemented by records that want the complete error,
// including its translation key and values. Registry.Validate calls
// AddValidationError instead of AddError when it is available.
type DetailedRecord interface {
	Record
	AddValidationError(err ValidationError)
}
