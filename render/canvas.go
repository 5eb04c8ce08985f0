package render

import (
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/pathtrack"
)

// Canvas mirrors a Topology as one Paint per cell. It is fed by a search
// visit callback and by the classified path. A Canvas is not safe for
// concurrent use.
type Canvas struct {
	width, height int
	cells         []Paint
	frontier      int // index of the Frontier cell, -1 if none
	onChange      func(p gridmap.Point, paint Paint)
}

// NewCanvas paints walls and endpoints of t; every other cell starts
// Unvisited.
func NewCanvas(t *gridmap.Topology) *Canvas {
	c := &Canvas{
		width:    t.Width(),
		height:   t.Height(),
		cells:    make([]Paint, t.Size()),
		frontier: -1,
	}
	for i := range c.cells {
		if t.Wall(t.Point(i)) {
			c.cells[i] = Wall
		}
	}
	c.cells[t.Index(t.Source())] = Endpoint
	c.cells[t.Index(t.Destination())] = Endpoint
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// At returns the paint of p; out-of-range points report Unvisited.
func (c *Canvas) At(p gridmap.Point) Paint {
	if !c.inBounds(p) {
		return Unvisited
	}
	return c.cells[c.index(p)]
}

// Visit records that a search marked p. The previous Frontier cell becomes
// Visited and p becomes the new Frontier. Endpoints and walls keep their
// paint.
func (c *Canvas) Visit(p gridmap.Point) {
	if !c.inBounds(p) {
		return
	}
	c.settle()
	i := c.index(p)
	if c.cells[i] == Endpoint || c.cells[i] == Wall {
		return
	}
	c.frontier = i
	c.set(i, Frontier)
}

// Track paints a classified route: Endpoint steps green, Interior steps blue.
// Any pending Frontier cell is settled first.
func (c *Canvas) Track(steps []pathtrack.Step) {
	c.settle()
	for _, s := range steps {
		if !c.inBounds(s.Point) {
			continue
		}
		paint := Path
		if s.Role == pathtrack.Endpoint {
			paint = Endpoint
		}
		c.set(c.index(s.Point), paint)
	}
}

// Count returns how many cells carry paint.
func (c *Canvas) Count(paint Paint) int {
	n := 0
	for _, v := range c.cells {
		if v == paint {
			n++
		}
	}
	return n
}

// settle demotes the Frontier cell, if any, to Visited.
func (c *Canvas) settle() {
	if c.frontier < 0 {
		return
	}
	if c.cells[c.frontier] == Frontier {
		c.set(c.frontier, Visited)
	}
	c.frontier = -1
}

func (c *Canvas) set(i int, paint Paint) {
	c.cells[i] = paint
	if c.onChange != nil {
		c.onChange(gridmap.Point{X: i % c.width, Y: i / c.width}, paint)
	}
}

func (c *Canvas) inBounds(p gridmap.Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

func (c *Canvas) index(p gridmap.Point) int { return p.Y*c.width + p.X }
