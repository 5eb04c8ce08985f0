// Package pathtrack defines roles, steps and sentinel errors for describing
// a route returned by package search.
package pathtrack

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by Validate.
var (
	// ErrEmptyPath indicates a nil or zero-length path.
	ErrEmptyPath = errors.New("pathtrack: path is empty")
	// ErrEndpointMismatch indicates the path does not start at the source or
	// does not end at the destination.
	ErrEndpointMismatch = errors.New("pathtrack: path endpoints do not match topology")
	// ErrOutOfBounds indicates a step outside the grid.
	ErrOutOfBounds = errors.New("pathtrack: step out of bounds")
	// ErrWallOnPath indicates a step onto a wall.
	ErrWallOnPath = errors.New("pathtrack: step onto a wall")
	// ErrNotAdjacent indicates consecutive steps that are not orthogonal neighbors.
	ErrNotAdjacent = errors.New("pathtrack: consecutive steps are not adjacent")
	// ErrRepeatedCell indicates a cell that appears twice.
	ErrRepeatedCell = errors.New("pathtrack: cell repeated on path")
)

// Role tells a renderer how to paint a step.
type Role int

const (
	// Interior is any step strictly between the endpoints.
	Interior Role = iota
	// Endpoint is the first or the last step.
	Endpoint
)

// String returns "interior" or "endpoint".
func (r Role) String() string {
	if r == Endpoint {
		return "endpoint"
	}
	return "interior"
}

// Step is one cell of a classified path.
type Step struct {
	gridmap.Point
	Role Role
}
