// Package gridmap models a rectangular obstacle grid with one source and one
// destination cell, the search space of package search.
//
// What:
//
//   - Topology holds width, height, a wall bitmap and the two endpoints.
//   - Build scatters walls column by column with a per-column cap and a
//     reproducible seed; FromRows parses a hand-drawn layout.
//   - Adjacent enumerates 4-connected neighbors in the fixed W, S, E, N order.
//   - Components and Connected flood-fill traversable regions.
//
// Why:
//
//   - Topology is immutable after construction, so several searches (one per
//     strategy) can share it while owning their own per-run state.
//   - Endpoints are forced traversable: a random wall can never land on them.
//
// Complexity:
//
//   - Build, FromRows:       O(W×H) time and memory.
//   - InBounds, Wall, Index: O(1).
//   - Components, Connected: O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - WithSeed / WithRand: generator for the random pass (default: clock seed).
//   - WithWallCap(n):      walls per column (default width/3, 0 = none).
//   - WithWallOdds(n):     per-cell wall chance 1/n (default 1/5).
//   - WithWalls(points...): explicit walls after the random pass.
//
// Errors:
//
//   - ErrBadDimensions:  width or height ≤ 0, or an empty layout.
//   - ErrOutOfRange:     endpoint or explicit wall outside the grid.
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrBadGlyph:       unknown layout character.
//   - ErrEndpoints:      layout without exactly one 'S' and one 'D'.
package gridmap
