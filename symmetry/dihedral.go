package symmetry

import (
	"errors"
	"fmt"

	"retrograde/game"
)

var ErrNotSquare = errors.New("dihedral symmetry requires a square board")

// Dihedral identifies a position with its 8 images under the rotations and
// reflections of a square board.
type Dihedral[P Transformable[P, M], M any] struct {
	position P
	hash     uint64
}

func NewDihedral[P Transformable[P, M], M any](p P) (Dihedral[P, M], error) {
	width, height := p.Dims()
	if width != height {
		return Dihedral[P, M]{}, fmt.Errorf("%w: board is %dx%d", ErrNotSquare, width, height)
	}
	return dihedral[P, M](p), nil
}

func MustDihedral[P Transformable[P, M], M any](p P) Dihedral[P, M] {
	d, err := NewDihedral[P, M](p)
	if err != nil {
		panic(err)
	}
	return d
}

// Moves never change the board shape, so successors skip the square check.
func dihedral[P Transformable[P, M], M any](p P) Dihedral[P, M] {
	return Dihedral[P, M]{
		position: p,
		hash:     Canonical[P, M](Symmetries[P, M](p)).Hash(),
	}
}

func (d Dihedral[P, M]) Unwrap() P {
	return d.position
}

func (d Dihedral[P, M]) Moves() []M {
	return d.position.Moves()
}

func (d Dihedral[P, M]) Play(move M) Dihedral[P, M] {
	return dihedral[P, M](d.position.Play(move))
}

func (d Dihedral[P, M]) Primitive() game.Primitive {
	return d.position.Primitive()
}

func (d Dihedral[P, M]) Hash() uint64 {
	return d.hash
}

func (d Dihedral[P, M]) Equal(other Dihedral[P, M]) bool {
	if d.hash != other.hash {
		return false
	}
	return containsImage[P, M](Symmetries[P, M](other.position), d.position)
}

func (d Dihedral[P, M]) String() string {
	return fmt.Sprint(d.position)
}
