package value

import (
	"errors"
	"fmt"

	"retrograde/game"
)

var (
	ErrNoChildren         = errors.New("cannot aggregate an empty list of children")
	ErrNoQualifyingChild  = errors.New("no child supports the aggregated outcome")
	errUnknownShippedType = errors.New("unknown recursive value type")
)

// Rule turns terminal classifications and child values into the recursive
// value of a position. Implementations must be pure.
type Rule[V any] interface {
	// FromPrimitive returns false when the position is not primitive.
	FromPrimitive(primitive game.Primitive) (V, bool)
	// Aggregate folds the values of all children of a non-primitive
	// position into the value of that position.
	Aggregate(children []V) V
}

// Shipped is the set of recursive values defined in this package.
type Shipped interface {
	Outcome | Result
}

// Split returns the outcome of v and, when v tracks it, its remoteness.
func Split[V Shipped](v V) (Outcome, Remoteness, bool) {
	switch v := any(v).(type) {
	case Outcome:
		return v, Infinite, false
	case Result:
		return v.Outcome, v.Remoteness, true
	default:
		panic(fmt.Errorf("%w: %T", errUnknownShippedType, v))
	}
}
