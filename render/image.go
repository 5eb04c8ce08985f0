package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/fogleman/gg"
)

// ErrBadCellSize is returned when the pixel size of a cell is not positive.
var ErrBadCellSize = errors.New("render: cell size must be positive")

// EncodePNG writes canvas as a PNG, each cell a cellSize×cellSize square.
func EncodePNG(w io.Writer, canvas *Canvas, cellSize int) error {
	dc, err := draw(canvas, cellSize)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes canvas to the PNG file at path.
func SavePNG(path string, canvas *Canvas, cellSize int) error {
	dc, err := draw(canvas, cellSize)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func draw(canvas *Canvas, cellSize int) (*gg.Context, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCellSize, cellSize)
	}
	dc := gg.NewContext(canvas.width*cellSize, canvas.height*cellSize)
	dc.SetColor(Unvisited.RGBA())
	dc.Clear()

	s := float64(cellSize)
	for i, paint := range canvas.cells {
		if paint == Unvisited {
			continue
		}
		x, y := i%canvas.width, i/canvas.width
		dc.SetColor(paint.RGBA())
		dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
		dc.Fill()
	}
	return dc, nil
}
