package service

import "errors"

var (
	// ErrInvalidInput marks a request rejected before reaching storage.
	ErrInvalidInput = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
