package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
)

var (
	// ErrInvalidDimension is returned when a grid is built with non-positive rows or columns
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidState is returned when a seed produces something other than Dead, AboutToDie or Alive
	ErrInvalidState = errors.New("invalid cell state")
)

// SeedFunc produces the initial state of the cell at (row, column)
type SeedFunc func(row, column int) cell.State

// Grid is an immutable snapshot of one generation.
// The zero value is an empty grid with no cells.
type Grid struct {
	rows    int
	columns int
	cells   [][]cell.State
}

// NewGrid creates a rows x columns grid, calling seed once per cell in row-major order
func NewGrid(rows, columns int, seed SeedFunc) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows: %d, columns: %d", rows, columns)
	}
	if seed == nil {
		seed = ConstantSeed(cell.Dead)
	}

	g := allocGrid(rows, columns)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			s := seed(r, c)
			if !s.Valid() {
				return nil, errors.Wrapf(ErrInvalidState, "[NewGrid] seed returned %d at (%d, %d)", uint8(s), r, c)
			}
			g.cells[r][c] = s
		}
	}
	return g, nil
}

// FromStates builds a grid from a rectangular matrix of states, copying it
func FromStates(states [][]cell.State) (*Grid, error) {
	if len(states) == 0 || len(states[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[FromStates] empty matrix")
	}
	columns := len(states[0])
	for r, row := range states {
		if len(row) != columns {
			return nil, errors.Wrapf(ErrInvalidDimension, "[FromStates] row %d has %d columns, want %d", r, len(row), columns)
		}
	}
	return NewGrid(len(states), columns, func(row, column int) cell.State {
		return states[row][column]
	})
}

func allocGrid(rows, columns int) *Grid {
	cells := make([][]cell.State, rows)
	for i := range cells {
		cells[i] = make([]cell.State, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns of the grid
func (g *Grid) Columns() int {
	return g.columns
}

// Size returns the number of cells in the grid
func (g *Grid) Size() int {
	return g.rows * g.columns
}

func (g *Grid) contains(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// StateAt returns the state of the cell at (row, column)
func (g *Grid) StateAt(row, column int) (cell.State, error) {
	if !g.contains(row, column) {
		return cell.Dead, errors.Wrapf(ErrOutOfBounds, "[StateAt] (%d, %d) outside %dx%d grid", row, column, g.rows, g.columns)
	}
	return g.cells[row][column], nil
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(row, column int, state cell.State)) {
	for r, cells := range g.cells {
		for c, s := range cells {
			fn(r, c, s)
		}
	}
}

// CountNeighbors counts living neighbors of (row, column).
// Cells beyond the edges are absent, the grid does not wrap.
func (g *Grid) CountNeighbors(row, column int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, column-1)
	maxCol := min(g.columns-1, column+1)

	for nr := minRow; nr <= maxRow; nr++ {
		for nc := minCol; nc <= maxCol; nc++ {
			if nr == row && nc == column {
				continue
			}
			if g.cells[nr][nc].IsAlive() {
				count++
			}
		}
	}

	return count
}

// Count returns the number of cells in the given state
func (g *Grid) Count(state cell.State) (count int) {
	for _, cells := range g.cells {
		for _, s := range cells {
			if s == state {
				count++
			}
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return g.Count(cell.Alive)
}

// Hash returns an MD5 digest of the dimensions and every cell state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.columns)
	for _, cells := range g.cells {
		for _, s := range cells {
			h.Write([]byte{byte(s)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same dimensions and states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
