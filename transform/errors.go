package transform

import "errors"

// Common transform errors.
var (
	// ErrNoInput is returned when a transform is invoked without a triple
	// collection. Partial graphs are never valid output, so this is
	// terminal for the whole transform.
	ErrNoInput = errors.New("no input triple collection")

	// ErrNoGraph is returned when a transform is invoked without a
	// destination or source graph.
	ErrNoGraph = errors.New("no property graph")
)
