// File: errors.go
// Role: sentinel errors for the compgraph package, in the teacher's
// "pkg: message" style (compare matrix/errors.go).

package compgraph

import "errors"

// ErrUnknownNode is returned when an operation references a node name that
// was never registered via Graph.AddNode.
var ErrUnknownNode = errors.New("compgraph: unknown node")
