package batch

import "errors"

var (
	// ErrNoEngine indicates a Runner was built without a comparer
	ErrNoEngine = errors.New("comparer cannot be nil")

	// ErrPoolStopped indicates a task was submitted after Stop
	ErrPoolStopped = errors.New("worker pool stopped")
)
