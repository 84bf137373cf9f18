// Package workers provides the background workers of the server and a
// Workers aggregate that starts them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutines and stop
// them when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
