package value

import (
	"fmt"
	"math"
	"strconv"

	"retrograde/game"

	"github.com/samber/lo"
)

// Remoteness is the number of moves in the shortest line of play that forces
// a position's outcome.
type Remoteness uint32

// Infinite orders above every finite remoteness.
const Infinite Remoteness = math.MaxUint32

// Next returns r+1. Infinite stays Infinite.
func (r Remoteness) Next() Remoteness {
	if r >= Infinite-1 {
		return Infinite
	}
	return r + 1
}

func (r Remoteness) IsInfinite() bool {
	return r == Infinite
}

func (r Remoteness) String() string {
	if r.IsInfinite() {
		return "inf"
	}
	return strconv.FormatUint(uint64(r), 10)
}

// Result is an outcome annotated with its remoteness.
type Result struct {
	Outcome    Outcome
	Remoteness Remoteness
}

func (r Result) String() string {
	return fmt.Sprintf("%s in %s", r.Outcome, r.Remoteness)
}

// ResultRule aggregates outcomes like OutcomeRule and tracks remoteness: a
// winner picks the fastest win, a loser delays as long as possible.
type ResultRule struct{}

func (ResultRule) FromPrimitive(primitive game.Primitive) (Result, bool) {
	outcome, ok := OutcomeRule{}.FromPrimitive(primitive)
	if !ok {
		return Result{}, false
	}
	return Result{Outcome: outcome, Remoteness: 0}, true
}

func (ResultRule) Aggregate(children []Result) Result {
	if len(children) == 0 {
		panic(ErrNoChildren)
	}

	outcome := aggregate(lo.Map(children, func(child Result, _ int) Outcome {
		return child.Outcome
	}))

	switch outcome {
	case Win:
		return Result{Outcome: Win, Remoteness: lo.Min(qualifying(children, Win, Lose)).Next()}
	case Tie:
		return Result{Outcome: Tie, Remoteness: lo.Min(qualifying(children, Tie, Tie)).Next()}
	case Lose:
		return Result{Outcome: Lose, Remoteness: lo.Max(qualifying(children, Lose, Win)).Next()}
	default:
		return Result{Outcome: Draw, Remoteness: Infinite}
	}
}

// qualifying returns the remoteness of every child whose outcome is want. It
// panics when there is none: the outcome rule and the remoteness rule disagree.
func qualifying(children []Result, parent Outcome, want Outcome) []Remoteness {
	remoteness := lo.FilterMap(children, func(child Result, _ int) (Remoteness, bool) {
		return child.Remoteness, child.Outcome == want
	})
	if len(remoteness) == 0 {
		panic(fmt.Errorf("%w: non-primitive %s needs a %s child", ErrNoQualifyingChild, parent, want))
	}
	return remoteness
}
