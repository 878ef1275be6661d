// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutines and stop
// them when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSink receives storage availability updates (the gRPC health
// server, the storage_up gauge).
type StatusSink interface {
	SetStorageUp(up bool)
}
