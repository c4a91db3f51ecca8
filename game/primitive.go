package game

// Primitive is the immediate, non-recursive outcome of a position for the
// player to move.
type Primitive int

const (
	NotPrimitive Primitive = iota // the game continues
	Win
	Lose
	Tie
)

func (p Primitive) String() string {
	switch p {
	case NotPrimitive:
		return "not-primitive"
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether the position has a definite outcome.
func (p Primitive) IsPrimitive() bool {
	return p != NotPrimitive
}
