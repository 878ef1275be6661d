// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is rendered for paths no route matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is rendered when the path matches a route that
	// does not serve the requested method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
