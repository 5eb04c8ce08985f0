package gridmap

import (
	"fmt"
	"strings"
)

// FromRows parses a textual layout, one string per row:
//
//	'.' open cell, '#' wall, 'S' source, 'D' destination
//
// Exactly one 'S' and one 'D' are required. Useful for fixtures and for
// reproducing a layout printed by Topology.String.
//
// Returns ErrBadDimensions for an empty layout, ErrNonRectangular for ragged
// rows, ErrBadGlyph for unknown characters and ErrEndpoints when S or D is
// missing or repeated.
// Complexity: O(W×H).
func FromRows(rows []string) (*Topology, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	t := &Topology{width: w, height: h, walls: make([]bool, w*h)}
	var sources, destinations int
	for y, row := range rows {
		for x, r := range row {
			p := Point{X: x, Y: y}
			switch r {
			case GlyphOpen:
			case GlyphWall:
				t.walls[t.Index(p)] = true
			case GlyphSource:
				t.source = p
				sources++
			case GlyphDestination:
				t.destination = p
				destinations++
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadGlyph, r, p)
			}
		}
	}
	if sources != 1 || destinations != 1 {
		return nil, fmt.Errorf("%w: found %d source(s), %d destination(s)", ErrEndpoints, sources, destinations)
	}
	t.countWalls()

	return t, nil
}

// String renders the layout in the FromRows format, rows separated by '\n'.
// When source and destination coincide the cell is printed as 'S'.
func (t *Topology) String() string {
	var sb strings.Builder
	sb.Grow(t.Size() + t.height)
	for y := 0; y < t.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < t.width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == t.source:
				sb.WriteByte(GlyphSource)
			case p == t.destination:
				sb.WriteByte(GlyphDestination)
			case t.walls[t.Index(p)]:
				sb.WriteByte(GlyphWall)
			default:
				sb.WriteByte(GlyphOpen)
			}
		}
	}
	return sb.String()
}
