package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/rules"
)

// Engine computes successive generations. It holds no mutable state and
// may be shared between goroutines.
type Engine struct {
	workers int
}

// NewEngine returns an engine that splits each generation across workers goroutines.
// A non-positive value uses one worker per CPU.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers}
}

// Workers returns the number of goroutines used per generation.
// The zero Engine uses one worker per CPU.
func (e *Engine) Workers() int {
	if e.workers <= 0 {
		return runtime.NumCPU()
	}
	return e.workers
}

var defaultEngine = NewEngine(0)

// Advance computes the next generation of g with the default engine
func Advance(g *Grid) *Grid {
	return defaultEngine.Advance(g)
}

// Advance computes the next generation of g in parallel row ranges.
// g is only read; the result is always a newly allocated grid.
func (e *Engine) Advance(g *Grid) *Grid {
	if g == nil || g.Size() == 0 {
		return &Grid{}
	}

	next := allocGrid(g.rows, g.columns)

	var (
		eg            errgroup.Group
		numWorkers    = min(e.Workers(), g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			for r := startRow; r < endRow; r++ {
				for c := 0; c < g.columns; c++ {
					s, err := nextState(g, r, c)
					if err != nil {
						return err
					}
					next.cells[r][c] = s
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		panic(errors.Wrap(err, "[Engine.Advance] grid invariant violated"))
	}

	return next
}

// AdvanceSequential computes the next generation with a single row-major scan
func AdvanceSequential(g *Grid) *Grid {
	if g == nil || g.Size() == 0 {
		return &Grid{}
	}

	next := allocGrid(g.rows, g.columns)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			s, err := nextState(g, r, c)
			if err != nil {
				panic(errors.Wrap(err, "[AdvanceSequential] grid invariant violated"))
			}
			next.cells[r][c] = s
		}
	}
	return next
}

func nextState(g *Grid, row, column int) (cell.State, error) {
	current, err := g.StateAt(row, column)
	if err != nil {
		return cell.Dead, err
	}
	return rules.ApplyConwayRules(g.CountNeighbors(row, column), current), nil
}
