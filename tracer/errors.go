package tracer

import "errors"

// ErrInvalidState is returned when a post-processing operation is
// invoked before TraceEdges has populated the processor's state.
var ErrInvalidState = errors.New("tracer: invalid state")
