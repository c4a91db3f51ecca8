package value

import (
	"fmt"

	"retrograde/game"

	"github.com/samber/lo"
)

// Outcome is the game-theoretic value of a position for the player to move.
type Outcome int

const (
	Win Outcome = iota
	Lose
	Tie
	// Draw is never produced by a primitive. It only arises from children
	// that are themselves Draw, and always carries Infinite remoteness.
	Draw
)

var outcomes = []Outcome{Win, Lose, Tie, Draw}

// Outcomes lists every outcome in declaration order.
func Outcomes() []Outcome {
	return append([]Outcome(nil), outcomes...)
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// OutcomeRule is the standard retrograde rule over plain outcomes.
type OutcomeRule struct{}

func (OutcomeRule) FromPrimitive(primitive game.Primitive) (Outcome, bool) {
	switch primitive {
	case game.Win:
		return Win, true
	case game.Lose:
		return Lose, true
	case game.Tie:
		return Tie, true
	default:
		return 0, false
	}
}

func (OutcomeRule) Aggregate(children []Outcome) Outcome {
	if len(children) == 0 {
		panic(ErrNoChildren)
	}
	return aggregate(children)
}

// aggregate picks Win if the mover can hand the opponent a loss, then prefers
// Tie over Draw, and falls back to Lose when every child wins for the opponent.
func aggregate(children []Outcome) Outcome {
	switch {
	case lo.Contains(children, Lose):
		return Win
	case lo.Contains(children, Tie):
		return Tie
	case lo.Contains(children, Draw):
		return Draw
	default:
		return Lose
	}
}
