package cell

// State is the value held by a single grid position
type State uint8

const (
	Dead State = iota
	Live
)

// Flip returns the opposite state
func (s State) Flip() State {
	if s == Live {
		return Dead
	}
	return Live
}

// IsLive reports whether the state is Live
func (s State) IsLive() bool {
	return s == Live
}

func (s State) String() string {
	if s == Live {
		return "live"
	}
	return "dead"
}
