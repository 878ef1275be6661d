// Package http implements the REST transport of the subjects service.
//
// It wires chi routes for subject CRUD and alumni resolution, the version
// and metrics endpoints, and the middleware chain: request tracing, access
// logging, request metrics, panic recovery, per-request timeouts and
// response compression. Service errors are mapped to HTTP statuses in
// errors_mapper.go and always rendered as {"message": "..."}.
package http
