package schema

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse yaml schema")
	ErrInvalidDefinition = errors.New("invalid schema definition")
)
