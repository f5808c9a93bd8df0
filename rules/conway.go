package rules

import "github.com/sheikhrachel/go-life/cell"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell with fewer than 2 or more than 3 living neighbors dies and is
flagged AboutToDie for exactly one generation. A living cell with 2 or 3
neighbors survives, and any non-living cell with exactly 3 neighbors is born.
Everything else is Dead, including a cell that was AboutToDie.
*/
func ApplyConwayRules(neighbors int, current cell.State) cell.State {
	alive := current.IsAlive()
	switch {
	case alive && (neighbors < 2 || neighbors > 3):
		return cell.AboutToDie
	case alive || neighbors == 3:
		return cell.Alive
	default:
		return cell.Dead
	}
}
