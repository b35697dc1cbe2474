package model

import "errors"

var (
	ErrUnknownAttribute   = errors.New("unknown attribute")
	ErrDuplicateAttribute = errors.New("attribute already declared")
	ErrKindMismatch       = errors.New("attribute kind mismatch")
	ErrInvalidAttribute   = errors.New("invalid attribute")

	// ErrInvalidRecord is returned by Save together with the validation errors.
	ErrInvalidRecord = errors.New("record is invalid")
)
