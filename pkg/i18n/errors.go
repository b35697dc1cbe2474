package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse yaml translations")
	ErrInvalidLanguage   = errors.New("invalid language tag")
	ErrInvalidStructure  = errors.New("invalid translation structure")
)
