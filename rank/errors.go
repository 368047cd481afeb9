package rank

import "errors"

var (
	// ErrEmptyNode is returned when a Sample has an empty node identifier.
	ErrEmptyNode = errors.New("rank: sample has empty node")

	// ErrEmptyTask is returned when a Sample has an empty task identifier.
	ErrEmptyTask = errors.New("rank: sample has empty task")
)
