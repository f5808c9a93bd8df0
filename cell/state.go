package cell

// State is the state of a single grid cell
type State uint8

const (
	Dead State = iota
	// AboutToDie marks a cell that was alive in the previous generation.
	// The rules treat it exactly like Dead.
	AboutToDie
	Alive

	// numStates is the exclusive upper bound used when drawing a random state
	numStates
)

// All lists every state a grid cell can hold
var All = [...]State{Dead, AboutToDie, Alive}

// Count returns the number of real cell states
func Count() int {
	return int(numStates)
}

// Valid reports whether s is one of Dead, AboutToDie or Alive
func (s State) Valid() bool {
	return s < numStates
}

// IsAlive reports whether s counts as a living neighbor
func (s State) IsAlive() bool {
	return s == Alive
}

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case AboutToDie:
		return "about-to-die"
	case Alive:
		return "alive"
	default:
		return "invalid"
	}
}
