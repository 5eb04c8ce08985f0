package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/pathtrack"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// fixture:
//
//	S.#
//	...
//	#.D
func fixture(t *testing.T) *gridmap.Topology {
	t.Helper()
	topo, err := gridmap.FromRows([]string{"S.#", "...", "#.D"})
	require.NoError(t, err)
	return topo
}

func TestNewCanvas(t *testing.T) {
	c := render.NewCanvas(fixture(t))
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, render.Endpoint, c.At(gridmap.Point{}))
	assert.Equal(t, render.Endpoint, c.At(gridmap.Point{X: 2, Y: 2}))
	assert.Equal(t, render.Wall, c.At(gridmap.Point{X: 2}))
	assert.Equal(t, render.Unvisited, c.At(gridmap.Point{X: 1, Y: 1}))
	assert.Equal(t, render.Unvisited, c.At(gridmap.Point{X: -1}))
	assert.Equal(t, 2, c.Count(render.Wall))
}

// TestCanvas_Visit checks the single moving Frontier and that endpoints keep
// their paint.
func TestCanvas_Visit(t *testing.T) {
	c := render.NewCanvas(fixture(t))
	a, b := gridmap.Point{X: 1}, gridmap.Point{X: 1, Y: 1}

	c.Visit(gridmap.Point{})
	assert.Equal(t, render.Endpoint, c.At(gridmap.Point{}))

	c.Visit(a)
	assert.Equal(t, render.Frontier, c.At(a))
	c.Visit(b)
	assert.Equal(t, render.Visited, c.At(a))
	assert.Equal(t, render.Frontier, c.At(b))
	assert.Equal(t, 1, c.Count(render.Frontier))

	c.Visit(gridmap.Point{X: 2}) // wall
	assert.Equal(t, render.Wall, c.At(gridmap.Point{X: 2}))
	assert.Equal(t, render.Visited, c.At(b))
	assert.Equal(t, 0, c.Count(render.Frontier))

	c.Visit(gridmap.Point{X: 7, Y: 7}) // ignored
}

func TestCanvas_Track(t *testing.T) {
	topo := fixture(t)
	eng, err := search.NewEngine(topo)
	require.NoError(t, err)

	c := render.NewCanvas(topo)
	eng.SetVisitCallback(c.Visit)
	res := eng.RunBFS()
	require.True(t, res.Found)

	c.Track(pathtrack.Classify(res.Path))
	assert.Equal(t, 0, c.Count(render.Frontier))
	assert.Equal(t, 2, c.Count(render.Endpoint))
	assert.Equal(t, len(res.Path)-2, c.Count(render.Path))
	for _, p := range res.Path[1 : len(res.Path)-1] {
		assert.Equal(t, render.Path, c.At(p))
	}
}

func TestPaint_String(t *testing.T) {
	assert.Equal(t, "frontier", render.Frontier.String())
	assert.Equal(t, "Paint(42)", render.Paint(42).String())
	assert.Equal(t, render.Unvisited.RGBA(), render.Paint(42).RGBA())
}

// recordScreen is an in-memory Screen.
type recordScreen struct {
	cells  map[[2]int]tcell.Style
	shows  int
	events []tcell.Event
}

func newRecordScreen(events ...tcell.Event) *recordScreen {
	return &recordScreen{cells: make(map[[2]int]tcell.Style), events: events}
}

func (s *recordScreen) SetContent(x, y int, _ rune, _ []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = style
}

func (s *recordScreen) Show() { s.shows++ }

func (s *recordScreen) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestTerminal_DrawAndVisit(t *testing.T) {
	scr := newRecordScreen()
	c := render.NewCanvas(fixture(t))
	term := render.NewTerminal(scr, c)

	term.Draw()
	assert.Len(t, scr.cells, 18, "two columns per cell")
	assert.Equal(t, render.StyleOf(render.Wall), scr.cells[[2]int{4, 0}])
	assert.Equal(t, render.StyleOf(render.Wall), scr.cells[[2]int{5, 0}])
	assert.Equal(t, render.StyleOf(render.Endpoint), scr.cells[[2]int{0, 0}])

	term.OnVisit(gridmap.Point{X: 1, Y: 1})
	assert.Equal(t, render.StyleOf(render.Frontier), scr.cells[[2]int{2, 1}])
	term.OnVisit(gridmap.Point{X: 0, Y: 1})
	assert.Equal(t, render.StyleOf(render.Visited), scr.cells[[2]int{3, 1}])
	assert.Equal(t, render.StyleOf(render.Frontier), scr.cells[[2]int{0, 1}])
	assert.Equal(t, 3, scr.shows)
}

func TestTerminal_CellWidth(t *testing.T) {
	scr := newRecordScreen()
	render.NewTerminal(scr, render.NewCanvas(fixture(t)), render.WithCellWidth(1)).Draw()
	assert.Len(t, scr.cells, 9)
	assert.Panics(t, func() { render.WithCellWidth(0) })
}

func TestTerminal_Wait(t *testing.T) {
	quitKeys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, key := range quitKeys {
		assert.True(t, render.IsQuit(key))
		scr := newRecordScreen(
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
			tcell.NewEventResize(6, 3),
			key,
			tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone),
		)
		render.NewTerminal(scr, render.NewCanvas(fixture(t))).Wait()
		assert.Len(t, scr.events, 1, "Wait must stop at the quit key")
		assert.Equal(t, 1, scr.shows, "resize repaints once")
	}
	assert.False(t, render.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

// TestTerminal_SimulationScreen runs the sink against a real tcell screen.
func TestTerminal_SimulationScreen(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(20, 10)

	term := render.NewTerminal(scr, render.NewCanvas(fixture(t)))
	term.Draw()
	require.NoError(t, scr.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	term.Wait()
}

func TestEncodePNG(t *testing.T) {
	c := render.NewCanvas(fixture(t))
	c.Visit(gridmap.Point{X: 1, Y: 1})
	c.Visit(gridmap.Point{X: 1, Y: 2})

	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, c, 4))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	at := func(x, y int) [3]uint32 {
		r, g, b, _ := img.At(x*4+2, y*4+2).RGBA()
		return [3]uint32{r >> 8, g >> 8, b >> 8}
	}
	assert.Equal(t, [3]uint32{0, 255, 0}, at(0, 0), "endpoint")
	assert.Equal(t, [3]uint32{255, 255, 255}, at(2, 0), "wall")
	assert.Equal(t, [3]uint32{255, 0, 0}, at(1, 1), "visited")
	assert.Equal(t, [3]uint32{255, 255, 0}, at(1, 2), "frontier")
	assert.Equal(t, [3]uint32{0, 0, 0}, at(0, 1), "unvisited")

	assert.ErrorIs(t, render.EncodePNG(&buf, c, 0), render.ErrBadCellSize)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, render.SavePNG(path, render.NewCanvas(fixture(t)), 3))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)

	err = render.SavePNG(filepath.Join(t.TempDir(), "missing", "grid.png"), render.NewCanvas(fixture(t)), 3)
	assert.Error(t, err)
}
