package temporal

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for nil, empty or whitespace-only input.
	// It is not a parse failure.
	ErrEmpty = errors.New("empty temporal value")

	// ErrInvalid is the parent of every parse failure.
	ErrInvalid = errors.New("invalid temporal value")

	ErrInvalidDate     = fmt.Errorf("%w: date", ErrInvalid)
	ErrInvalidTime     = fmt.Errorf("%w: time", ErrInvalid)
	ErrInvalidDateTime = fmt.Errorf("%w: date time", ErrInvalid)

	// ErrUnsupportedType is returned when Parse receives a value it cannot interpret.
	ErrUnsupportedType = fmt.Errorf("%w: unsupported input type", ErrInvalid)

	// ErrInvalidMode is returned when a Mode outside Date, Time and DateTime is used.
	ErrInvalidMode = errors.New("invalid parse mode")

	// ErrInvalidPivot is returned by NewFromConfig for a pivot outside 0..100.
	ErrInvalidPivot = errors.New("two digit year pivot must be between 0 and 100")
)
