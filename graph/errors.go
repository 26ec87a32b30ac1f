package graph

import "errors"

// Common graph errors.
var (
	// ErrUnknownEndpoint is returned when an edge references a node the
	// graph does not hold.
	ErrUnknownEndpoint = errors.New("edge endpoint not present in graph")
)
