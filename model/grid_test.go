package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
)

const (
	o = cell.Dead
	f = cell.AboutToDie
	X = cell.Alive
)

func mustGrid(t *testing.T, states [][]cell.State) *Grid {
	t.Helper()
	g, err := FromStates(states)
	if err != nil {
		t.Fatalf("FromStates: %v", err)
	}
	return g
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		rows, columns int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
		{3, -7},
		{0, 0},
	}
	for _, tt := range tests {
		_, err := NewGrid(tt.rows, tt.columns, nil)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", tt.rows, tt.columns, err)
		}
	}
}

func TestNewGridRejectsInvalidSeedState(t *testing.T) {
	_, err := NewGrid(2, 2, func(_, _ int) cell.State { return cell.State(3) })
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("error = %v, want ErrInvalidState", err)
	}
}

func TestNewGridCallsSeedOncePerCell(t *testing.T) {
	calls := map[[2]int]int{}
	g, err := NewGrid(4, 6, func(r, c int) cell.State {
		calls[[2]int{r, c}]++
		return cell.Alive
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 24 {
		t.Fatalf("seed called for %d distinct cells, want 24", len(calls))
	}
	for coord, n := range calls {
		if n != 1 {
			t.Errorf("seed called %d times for %v", n, coord)
		}
	}
	if g.Rows() != 4 || g.Columns() != 6 || g.Size() != 24 {
		t.Errorf("dimensions = %dx%d (%d), want 4x6 (24)", g.Rows(), g.Columns(), g.Size())
	}
	if g.CountLivingCells() != 24 {
		t.Errorf("CountLivingCells() = %d, want 24", g.CountLivingCells())
	}
}

func TestFromStatesRejectsRaggedRows(t *testing.T) {
	_, err := FromStates([][]cell.State{{o, o}, {o}})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("error = %v, want ErrInvalidDimension", err)
	}
	if _, err = FromStates(nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("error = %v, want ErrInvalidDimension", err)
	}
}

func TestFromStatesCopiesInput(t *testing.T) {
	states := [][]cell.State{{X, o}, {o, X}}
	g := mustGrid(t, states)
	states[0][0] = o

	s, err := g.StateAt(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s != X {
		t.Errorf("grid changed with its source matrix: got %v", s)
	}
}

func TestStateAtOutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]cell.State{{o, X, f}, {X, X, o}})
	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		if _, err := g.StateAt(coord[0], coord[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("StateAt%v error = %v, want ErrOutOfBounds", coord, err)
		}
	}
	s, err := g.StateAt(0, 2)
	if err != nil || s != f {
		t.Errorf("StateAt(0, 2) = %v, %v; want %v, nil", s, err, f)
	}
}

func TestCountNeighborsAtBoundaries(t *testing.T) {
	full, err := NewGrid(5, 5, ConstantSeed(cell.Alive))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name        string
		row, column int
		want        int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 0, 4, 3},
		{"bottom-left corner", 4, 0, 3},
		{"bottom-right corner", 4, 4, 3},
		{"top edge", 0, 2, 5},
		{"left edge", 2, 0, 5},
		{"right edge", 3, 4, 5},
		{"bottom edge", 4, 1, 5},
		{"interior", 2, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := full.CountNeighbors(tt.row, tt.column); got != tt.want {
				t.Errorf("CountNeighbors(%d, %d) = %d, want %d", tt.row, tt.column, got, tt.want)
			}
		})
	}
}

func TestCountNeighborsIgnoresFadingCells(t *testing.T) {
	g := mustGrid(t, [][]cell.State{
		{f, f, f},
		{f, X, f},
		{f, f, X},
	})
	if got := g.CountNeighbors(1, 1); got != 1 {
		t.Errorf("CountNeighbors(1, 1) = %d, want 1", got)
	}
}

func TestCountNeighborsDoesNotWrap(t *testing.T) {
	g := mustGrid(t, [][]cell.State{
		{o, o, X},
		{o, o, o},
		{X, o, X},
	})
	if got := g.CountNeighbors(0, 0); got != 0 {
		t.Errorf("CountNeighbors(0, 0) = %d, want 0", got)
	}
}

func TestHashAndEqual(t *testing.T) {
	a := mustGrid(t, [][]cell.State{{o, X}, {f, o}})
	b := mustGrid(t, [][]cell.State{{o, X}, {f, o}})
	c := mustGrid(t, [][]cell.State{{o, X}, {o, o}})
	wide := mustGrid(t, [][]cell.State{{o, X, f, o}})

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("identical grids should be equal and hash alike")
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Error("fading and dead cells must be distinguished")
	}
	if a.Equal(wide) || a.Hash() == wide.Hash() {
		t.Error("grids of different shape must differ")
	}
}

func TestEachVisitsRowMajor(t *testing.T) {
	g := mustGrid(t, [][]cell.State{{o, X}, {f, o}})
	var got []cell.State
	g.Each(func(_, _ int, s cell.State) {
		got = append(got, s)
	})
	want := []cell.State{o, X, f, o}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each order = %v, want %v", got, want)
		}
	}
}

func TestRandomSeedProducesOnlyRealStates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := NewGrid(40, 40, RandomSeed(rng))
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range cell.All {
		if g.Count(s) == 0 {
			t.Errorf("no %v cells in a 1600 cell random grid", s)
		}
	}
	if total := g.Count(o) + g.Count(f) + g.Count(X); total != g.Size() {
		t.Errorf("state counts sum to %d, want %d", total, g.Size())
	}
}

func TestPatternSeed(t *testing.T) {
	g, err := NewGrid(5, 5, PatternSeed(Glider, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := mustGrid(t, [][]cell.State{
		{o, o, o, o, o},
		{o, o, X, o, o},
		{o, o, o, X, o},
		{o, X, X, X, o},
		{o, o, o, o, o},
	})
	if !g.Equal(want) {
		t.Error("glider not placed at (1, 1)")
	}

	clipped, err := NewGrid(2, 2, PatternSeed(Glider, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if clipped.CountLivingCells() != 1 {
		t.Errorf("clipped glider has %d living cells, want 1", clipped.CountLivingCells())
	}
}

func TestCenteredPatternSeed(t *testing.T) {
	g, err := NewGrid(5, 5, CenteredPatternSeed(Blinker, 5, 5))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []int{1, 2, 3} {
		if s, _ := g.StateAt(r, 2); s != X {
			t.Errorf("(%d, 2) = %v, want alive", r, s)
		}
	}
	if g.CountLivingCells() != 3 {
		t.Errorf("CountLivingCells() = %d, want 3", g.CountLivingCells())
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range PatternNames() {
		if _, err := LookupPattern(name); err != nil {
			t.Errorf("LookupPattern(%q): %v", name, err)
		}
	}
	if _, err := LookupPattern("pulsar"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("error = %v, want ErrUnknownPattern", err)
	}
}

func TestEqualNil(t *testing.T) {
	g := mustGrid(t, [][]cell.State{{o, X}})
	if g.Equal(nil) {
		t.Error("a grid should never equal nil")
	}
}
