package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidField wraps the field-level failures reported by the
	// underlying validator.
	ErrInvalidField = errors.New("invalid field")
)
