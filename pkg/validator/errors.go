package validator

import "errors"

// Configuration errors returned while registering field rules.
var (
	// ErrInvalidRestriction is returned when a literal bound cannot be parsed
	// or a restriction has no usable source.
	ErrInvalidRestriction = errors.New("invalid restriction")

	// ErrMissingSource is wrapped by ErrInvalidRestriction when a field name,
	// function or source is missing.
	ErrMissingSource = errors.New("missing restriction source")

	// ErrInvalidField is returned for an empty attribute name or an unknown parse mode.
	ErrInvalidField = errors.New("invalid field configuration")

	// ErrDuplicateField is returned when an attribute is registered twice.
	ErrDuplicateField = errors.New("field already registered")
)
