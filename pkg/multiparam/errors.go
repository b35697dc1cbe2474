package multiparam

import "errors"

var (
	// ErrUnknownAttribute is returned by a Target for a name it does not declare.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrNotComposite is returned when a group targets an attribute that is
	// neither temporal nor has a composer.
	ErrNotComposite = errors.New("attribute does not accept multiparameter values")

	// ErrComposePanic wraps a panic raised while composing a value.
	ErrComposePanic = errors.New("composer panicked")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
)
