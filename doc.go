// Package gridpath is a playground for path-finding on 2D obstacle grids:
// build a random or hand-drawn map, search it with a classic algorithm and
// watch every visited cell as it happens.
//
// 🚀 What is gridpath?
//
//	A small, deterministic toolkit that brings together:
//		• Grids: random per-column walls from a seed, ASCII layouts, flood fill
//		• Search: BFS, recursive DFS, iterative DFS and A*
//		• Routes: endpoint/interior classification and path validation
//		• Rendering: live terminal view (tcell) and PNG export (gg)
//		• Telemetry: Prometheus run metrics and structured slog output
//
// ✨ Why gridpath?
//
//   - Deterministic : fixed W, S, E, N neighbor order and stable A* ties
//   - Observable : OnVisit hooks stream every visited cell
//   - Shareable : one immutable Topology, one Engine per concurrent search
//
// Packages:
//
//	gridmap/   : immutable Topology, Build options, FromRows, Components
//	search/    : Engine, State, RunBFS / RunDFS / RunDFSIterative / RunAStar
//	pathtrack/ : Classify and Validate routes
//	render/    : Canvas, tcell Terminal sink, PNG sink
//	metrics/   : Prometheus Recorder implementing search.Observer
//	config/    : .env + environment settings for the host
//	cmd/gridpath : the interactive visualizer
//
// Quick ASCII example:
//
//	S...
//	.##.
//	...D
//
//	BFS walks around the wall in 5 steps.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
