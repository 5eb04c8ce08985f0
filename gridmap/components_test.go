// File: gridmap/components_test.go
package gridmap

import (
	"reflect"
	"sort"
	"testing"
)

// TestComponents_Simple tests Components on a 4×3 layout.
//
// Layout ('#' = wall):
//
//	S#..
//	.#..
//	.#.D
//
// Expected: 2 regions of sizes 3 and 6.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestComponents_Simple(t *testing.T) {
	topo, err := FromRows([]string{
		"S#..",
		".#..",
		".#.D",
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	comps := topo.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{3, 6}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if comps[0][0] != (Point{X: 0, Y: 0}) {
		t.Errorf("first component starts at %v; want (0,0)", comps[0][0])
	}
}

// TestComponents_NoDiagonals ensures corner-touching cells stay separate.
//
//	S#
//	#D
func TestComponents_NoDiagonals(t *testing.T) {
	topo, _ := FromRows([]string{"S#", "#D"})
	if n := len(topo.Components()); n != 2 {
		t.Errorf("got %d components; want 2", n)
	}
	if topo.Connected(topo.Source(), topo.Destination(), nil) {
		t.Errorf("diagonal endpoints reported connected")
	}
}

// TestConnected_OpenFilter verifies that the open predicate prunes cells but
// never the endpoints themselves.
func TestConnected_OpenFilter(t *testing.T) {
	topo, _ := FromRows([]string{"S..D"})
	src, dst := topo.Source(), topo.Destination()

	if !topo.Connected(src, dst, nil) {
		t.Fatalf("open corridor should be connected")
	}
	blocked := func(p Point) bool { return p != (Point{X: 2, Y: 0}) }
	if topo.Connected(src, dst, blocked) {
		t.Errorf("corridor with a closed cell should not be connected")
	}
	none := func(Point) bool { return false }
	if !topo.Connected(src, src, none) {
		t.Errorf("a cell is always connected to itself")
	}
	adj, _ := FromRows([]string{"SD"})
	if !adj.Connected(adj.Source(), adj.Destination(), none) {
		t.Errorf("adjacent endpoints must connect regardless of the filter")
	}
}
