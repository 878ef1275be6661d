package models

import "errors"

// ErrRequiredField is returned by constructors when a mandatory field is
// empty. The field name is appended to the wrapped message.
var ErrRequiredField = errors.New("required field is missing")
