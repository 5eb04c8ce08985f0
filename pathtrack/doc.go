// Package pathtrack turns a found route into drawable steps and checks that a
// route is well formed.
//
// What
//
//   - Classify: tag each cell Endpoint (first, last) or Interior. Pure.
//   - Validate: verify a route against a gridmap.Topology: right endpoints,
//     in bounds, no walls, 4-adjacent steps, no repeats.
//
// Errors
//
//	ErrEmptyPath, ErrEndpointMismatch, ErrOutOfBounds, ErrWallOnPath,
//	ErrNotAdjacent, ErrRepeatedCell. Use errors.Is.
package pathtrack
