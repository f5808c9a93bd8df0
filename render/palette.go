package render

import (
	"image"
	"image/color"

	"github.com/sheikhrachel/go-life/cell"
)

// Palette maps cell states to display colors
type Palette struct {
	Background color.RGBA
	Dead       color.RGBA
	AboutToDie color.RGBA
	Alive      color.RGBA
}

// DefaultPalette is the dark blue board with pale green cells
var DefaultPalette = Palette{
	Background: color.RGBA{R: 30, G: 30, B: 60, A: 0xff},
	Dead:       color.RGBA{R: 10, G: 10, B: 40, A: 0xff},
	AboutToDie: color.RGBA{R: 253, G: 255, B: 182, A: 0xff},
	Alive:      color.RGBA{R: 153, G: 217, B: 140, A: 0xff},
}

// ColorFor returns the color of a cell in state s
func (p Palette) ColorFor(s cell.State) color.RGBA {
	switch s {
	case cell.AboutToDie:
		return p.AboutToDie
	case cell.Alive:
		return p.Alive
	default:
		return p.Dead
	}
}

// CellRect returns the square drawn for the cell at (row, column).
// A one pixel gutter is left on the right and bottom of every cell.
func CellRect(row, column, cellSize int) image.Rectangle {
	x, y := column*cellSize, row*cellSize
	side := max(cellSize-1, 1)
	return image.Rect(x, y, x+side, y+side)
}

// ScreenSize returns the pixel size of a rows x columns board
func ScreenSize(rows, columns, cellSize int) (width, height int) {
	return columns * cellSize, rows * cellSize
}
