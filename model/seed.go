package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
)

// ErrUnknownPattern is returned for pattern names that are not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a small block of living (true) and dead (false) cells
type Pattern [][]bool

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	// Blinker is a period two oscillator, vertical in this orientation
	Blinker = Pattern{
		{false, true, false},
		{false, true, false},
		{false, true, false},
	}

	patterns = map[string]Pattern{
		"glider":  Glider,
		"blinker": Blinker,
	}
)

// PatternNames lists the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the pattern registered under name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// RandomSeed picks uniformly among Dead, AboutToDie and Alive.
// The returned func is not safe for concurrent use since rng is not.
func RandomSeed(rng *rand.Rand) SeedFunc {
	return func(_, _ int) cell.State {
		return cell.State(rng.Intn(cell.Count()))
	}
}

// ConstantSeed fills every cell with state
func ConstantSeed(state cell.State) SeedFunc {
	return func(_, _ int) cell.State {
		return state
	}
}

// PatternSeed places p with its top-left corner at (row, column) on a dead background.
// Parts of the pattern falling outside the grid are dropped.
func PatternSeed(p Pattern, row, column int) SeedFunc {
	return func(r, c int) cell.State {
		pr, pc := r-row, c-column
		if pr < 0 || pr >= len(p) || pc < 0 || pc >= len(p[pr]) {
			return cell.Dead
		}
		if p[pr][pc] {
			return cell.Alive
		}
		return cell.Dead
	}
}

// CenteredPatternSeed places p in the middle of a rows x columns grid
func CenteredPatternSeed(p Pattern, rows, columns int) SeedFunc {
	width := 0
	for _, line := range p {
		width = max(width, len(line))
	}
	return PatternSeed(p, (rows-len(p))/2, (columns-width)/2)
}
