package symmetry

import (
	"fmt"

	"retrograde/game"
)

// Reflected identifies a position with its images under row and column
// reflection. It works on boards of any shape.
type Reflected[P Transformable[P, M], M any] struct {
	position P
	hash     uint64
}

func Reflect[P Transformable[P, M], M any](p P) Reflected[P, M] {
	return Reflected[P, M]{
		position: p,
		hash:     Canonical[P, M](Reflections[P, M](p)).Hash(),
	}
}

func (r Reflected[P, M]) Unwrap() P {
	return r.position
}

func (r Reflected[P, M]) Moves() []M {
	return r.position.Moves()
}

func (r Reflected[P, M]) Play(move M) Reflected[P, M] {
	return Reflect[P, M](r.position.Play(move))
}

func (r Reflected[P, M]) Primitive() game.Primitive {
	return r.position.Primitive()
}

func (r Reflected[P, M]) Hash() uint64 {
	return r.hash
}

func (r Reflected[P, M]) Equal(other Reflected[P, M]) bool {
	if r.hash != other.hash {
		return false
	}
	return containsImage[P, M](Reflections[P, M](other.position), r.position)
}

func (r Reflected[P, M]) String() string {
	return fmt.Sprint(r.position)
}
