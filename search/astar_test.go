package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/pathtrack"
	"github.com/katalvlaran/gridpath/search"
)

func TestHeuristics(t *testing.T) {
	a, b := gridmap.Point{X: 1, Y: 2}, gridmap.Point{X: 4, Y: -2}
	assert.Equal(t, 25, search.SquaredEuclidean(a, b))
	assert.Equal(t, 7, search.Manhattan(a, b))
	assert.Equal(t, 0, search.SquaredEuclidean(a, a))
}

// TestAStar_ValidPaths checks every found path on seeded maps with both
// open-set implementations.
func TestAStar_ValidPaths(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		topo, err := gridmap.Build(32, 24, gridmap.Point{X: 31}, gridmap.Point{Y: 23}, gridmap.WithSeed(seed))
		require.NoError(t, err)

		list := mustEngine(t, topo).RunAStar()
		heap := mustEngine(t, topo, search.WithHeapFrontier()).RunAStar()

		assert.Equal(t, list.Found, heap.Found, "seed %d", seed)
		assert.Equal(t, list.Path, heap.Path, "seed %d", seed)
		assert.Equal(t, list.Visited, heap.Visited, "seed %d", seed)
		assert.Equal(t, list.Expanded, heap.Expanded, "seed %d", seed)
		if list.Found {
			assert.NoError(t, pathtrack.Validate(topo, list.Path), "seed %d", seed)
		}
	}
}

// TestAStar_ManhattanOpenGrid: with an admissible estimate and no walls the
// route has Manhattan length and only cells inside the bounding box are
// expanded.
func TestAStar_ManhattanOpenGrid(t *testing.T) {
	src, dst := gridmap.Point{X: 2, Y: 9}, gridmap.Point{X: 13, Y: 1}
	topo, err := gridmap.Build(16, 12, src, dst, gridmap.WithWallCap(0))
	require.NoError(t, err)

	for _, opts := range [][]search.Option{
		{search.WithHeuristic(search.Manhattan)},
		{search.WithHeuristic(search.Manhattan), search.WithHeapFrontier()},
	} {
		res := mustEngine(t, topo, opts...).RunAStar()
		require.True(t, res.Found)
		assert.Equal(t, src.Manhattan(dst), res.Edges())
		assert.LessOrEqual(t, res.Expanded, (13-2+1)*(9-1+1))
	}
}

// TestAStar_DeadEndCorridor: the estimate first pulls the search into the
// blind corridor, then the open set falls back to the outer ring.
func TestAStar_DeadEndCorridor(t *testing.T) {
	topo := mustRows(t,
		".......",
		".#####.",
		"S....#D",
		".#####.",
		".......",
	)
	bfs := mustEngine(t, topo).RunBFS()
	astar := mustEngine(t, topo).RunAStar()
	require.True(t, bfs.Found)
	require.True(t, astar.Found)
	assert.NoError(t, pathtrack.Validate(topo, astar.Path))
	assert.Equal(t, bfs.Edges(), astar.Edges())
	assert.Contains(t, astar.Path, gridmap.Point{X: 3, Y: 4})
	assert.Equal(t, 17, astar.Visited)
}

func TestWithHeuristic_NilKeepsDefault(t *testing.T) {
	topo := mustRows(t, aroundWall...)
	a := mustEngine(t, topo).RunAStar()
	b := mustEngine(t, topo, search.WithHeuristic(nil)).RunAStar()
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Visited, b.Visited)
}
