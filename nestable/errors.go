package nestable

import "errors"

// Sentinel errors returned by List and Item operations.
var (
	// ErrNilConstructor is returned by [New] when the constructor is nil,
	// and by Extend / ReplaceAll on a list built by [FromFactory] with a
	// nil factory.
	ErrNilConstructor = errors.New("nestable: constructor must be callable")

	// ErrNilUpdater is returned by [RegisterUpdater] when fn is nil.
	ErrNilUpdater = errors.New("nestable: updater must not be nil")
)
