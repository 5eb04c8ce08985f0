// Package search finds a route between the source and destination of a
// gridmap.Topology with four interchangeable strategies.
//
// What
//
//   - Engine binds one Topology and owns the per-run State (visited flags,
//     g and h costs, parent links) keyed by cell index.
//   - RunBFS: unweighted breadth-first search, shortest path in edges.
//   - RunDFS: recursive depth-first search in W, S, E, N order.
//   - RunDFSIterative: the same traversal on an explicit frame stack; returns
//     the identical path without recursion-depth limits.
//   - RunAStar: best-first search on g+h with first-seen tie-breaking.
//   - Each run returns a Result; Found == false is a normal outcome meaning
//     the destination is unreachable through cells still unvisited.
//
// Hooks
//
//   - OnVisit fires synchronously right after a cell is marked visited, at
//     most once per cell per run. It receives only a coordinate.
//   - Observer is notified after every run (see package metrics).
//
// Determinism
//
//	Neighbors are always generated in W, S, E, N order and the AStar open
//	set breaks ties by insertion order (also when heap-backed), so a fixed
//	layout always yields the same path.
//
// Heuristic
//
//	The default SquaredEuclidean estimate overestimates unit-step distance.
//	AStar therefore returns a valid path that is not guaranteed to be the
//	shortest. Manhattan is available through WithHeuristic.
//
// Lifecycle
//
//	A run mutates the Engine's State. Call Reset before an independent run
//	over the same Engine, or use one Engine per strategy to compare results
//	side by side over one shared Topology.
//
// Complexity
//
//   - RunBFS, RunDFS, RunDFSIterative: O(W·H) time and memory.
//   - RunAStar: O((W·H)²) with the linear open set, O(W·H·log(W·H)) with
//     WithHeapFrontier.
package search
