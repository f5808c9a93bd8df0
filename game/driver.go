package game

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Event is a logical input surfaced by a frontend
type Event int

const (
	AdvanceGeneration Event = iota
	Quit
)

func (e Event) String() string {
	switch e {
	case AdvanceGeneration:
		return "advance"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Status describes how the population has been evolving
type Status string

const (
	StatusActive      Status = "Active"
	StatusStable      Status = "Stable"
	StatusOscillating Status = "Oscillating"
	StatusExtinct     Status = "Extinct"
)

// ErrUnknownEvent is returned by Handle for events it does not recognize
var ErrUnknownEvent = errors.New("unknown event")

// Driver owns the current generation and advances it one step per event.
// It is meant to be used from a single goroutine.
type Driver struct {
	engine      *model.Engine
	grid        *model.Grid
	generation  int
	stats       *utils.Stats
	history     []string // hashes of recent generations, oldest first
	historySize int
}

// NewDriver starts a run from grid
func NewDriver(grid *model.Grid, engine *model.Engine, historySize int) *Driver {
	if engine == nil {
		engine = model.NewEngine(0)
	}
	d := &Driver{
		engine:      engine,
		grid:        grid,
		stats:       utils.NewStats(),
		historySize: historySize,
	}
	d.stats.Update(0, grid.CountLivingCells(), grid.Count(cell.AboutToDie), 0)
	return d
}

// Grid returns the current generation
func (d *Driver) Grid() *model.Grid {
	return d.grid
}

// Engine returns the engine used to advance the grid
func (d *Driver) Engine() *model.Engine {
	return d.engine
}

// Generation returns how many times the grid has been advanced
func (d *Driver) Generation() int {
	return d.generation
}

// Stats returns the run statistics
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// Step replaces the current grid with its successor and returns it
func (d *Driver) Step() *model.Grid {
	start := time.Now()
	next := d.engine.Advance(d.grid)
	elapsed := time.Since(start)

	d.updateHistory()
	d.grid = next
	d.generation++
	d.stats.Update(d.generation, next.CountLivingCells(), next.Count(cell.AboutToDie), elapsed)

	return next
}

// Handle applies ev and reports whether the run should end
func (d *Driver) Handle(ev Event) (quit bool, err error) {
	switch ev {
	case AdvanceGeneration:
		d.Step()
		return false, nil
	case Quit:
		return true, nil
	default:
		return false, errors.Wrapf(ErrUnknownEvent, "[Handle] %d", int(ev))
	}
}

func (d *Driver) updateHistory() {
	if d.historySize == 0 {
		return
	}
	d.history = append(d.history, d.grid.Hash())

	// Keep only the last historySize states to detect cycles
	if len(d.history) > d.historySize {
		d.history = d.history[1:]
	}
}

// Status classifies the current generation against recent history
func (d *Driver) Status() Status {
	if d.grid.CountLivingCells() == 0 {
		return StatusExtinct
	}
	if len(d.history) == 0 {
		return StatusActive
	}

	currentHash := d.grid.Hash()
	if d.history[len(d.history)-1] == currentHash {
		return StatusStable
	}
	for _, h := range d.history[:len(d.history)-1] {
		if h == currentHash {
			return StatusOscillating
		}
	}
	return StatusActive
}
