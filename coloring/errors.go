package coloring

import "errors"

// Sentinel errors for the coloring package. Transient conditions (a failed
// commit attempt, a backoff retry) never surface as errors — per spec.md
// §7's TransientConflict policy they are recovered locally — so every
// sentinel here represents a fatal, caller-visible condition.
var (
	// ErrNilGraph indicates Color was called with a nil *graph.Graph.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrInvalidOption indicates a functional option received an
	// out-of-range value (e.g. WithThreads(-1) or WithRepairRounds(-1)).
	ErrInvalidOption = errors.New("coloring: invalid option value")

	// ErrVerificationFailed indicates the final ColorState failed the
	// proper-coloring check (I3) even after the repair loop's safety net.
	// This should never happen by construction; its presence signals a
	// bug in the commit primitive or repair loop, not a bad input graph.
	ErrVerificationFailed = errors.New("coloring: final coloring is invalid")
)
