package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/search"
)

// benchTopology builds a seeded n×n grid with opposite-corner endpoints.
func benchTopology(b *testing.B, n int) *gridmap.Topology {
	b.Helper()
	topo, err := gridmap.Build(n, n, gridmap.Point{}, gridmap.Point{X: n - 1, Y: n - 1}, gridmap.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	return topo
}

// benchRun resets and runs s on one engine per iteration.
func benchRun(b *testing.B, n int, s search.Strategy, opts ...search.Option) {
	eng, err := search.NewEngine(benchTopology(b, n), opts...)
	if err != nil {
		b.Fatalf("NewEngine failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Reset()
		_, _ = eng.Run(s)
	}
}

// BenchmarkBFS measures RunBFS on a 300×300 grid.
// Complexity: O(W×H)
func BenchmarkBFS(b *testing.B) { benchRun(b, 300, search.BFS) }

// BenchmarkDFS measures the recursive form on a 300×300 grid.
func BenchmarkDFS(b *testing.B) { benchRun(b, 300, search.DFS) }

// BenchmarkDFSIterative measures the frame-stack form on a 300×300 grid.
func BenchmarkDFSIterative(b *testing.B) { benchRun(b, 300, search.DFSIterative) }

// BenchmarkAStar_List uses the linear-scan open set.
// Complexity: O((W×H)²) worst case
func BenchmarkAStar_List(b *testing.B) { benchRun(b, 150, search.AStar) }

// BenchmarkAStar_Heap uses the heap-backed open set on the same grid.
// Complexity: O(W×H×log(W×H))
func BenchmarkAStar_Heap(b *testing.B) { benchRun(b, 150, search.AStar, search.WithHeapFrontier()) }

// BenchmarkHookOverhead measures the cost of a no-op OnVisit callback.
func BenchmarkHookOverhead(b *testing.B) {
	benchRun(b, 300, search.BFS, search.WithOnVisit(func(gridmap.Point) {}))
}
