// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// them alive until ctx is cancelled or Stop is called. Stop blocks until
// every goroutine started by the worker has exited and must be safe to call
// on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
