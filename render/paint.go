// Package render draws a search as it runs: a Canvas of cell paints, a
// tcell terminal sink and a PNG sink.
package render

import (
	"fmt"
	"image/color"
)

// Paint is the display state of one cell.
type Paint uint8

const (
	// Unvisited is an open cell no search has reached (black).
	Unvisited Paint = iota
	// Wall is an obstacle (white).
	Wall
	// Visited is a cell a search has marked (red).
	Visited
	// Frontier is the most recently visited cell (yellow).
	Frontier
	// Path is an interior cell of the found route (blue).
	Path
	// Endpoint is the source or the destination (green).
	Endpoint
)

var paintNames = [...]string{"unvisited", "wall", "visited", "frontier", "path", "endpoint"}

var paintColors = [...]color.RGBA{
	Unvisited: {0, 0, 0, 255},
	Wall:      {255, 255, 255, 255},
	Visited:   {255, 0, 0, 255},
	Frontier:  {255, 255, 0, 255},
	Path:      {0, 0, 255, 255},
	Endpoint:  {0, 255, 0, 255},
}

// String returns the lower-case paint name.
func (p Paint) String() string {
	if int(p) < len(paintNames) {
		return paintNames[p]
	}
	return fmt.Sprintf("Paint(%d)", uint8(p))
}

// RGBA returns the display color; unknown paints render black.
func (p Paint) RGBA() color.RGBA {
	if int(p) < len(paintColors) {
		return paintColors[p]
	}
	return paintColors[Unvisited]
}
