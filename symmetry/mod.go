// Package symmetry folds positions related by reflections and rotations of
// the board into a single memo table key.
//
// A wrapper keeps the move and terminal semantics of the position it wraps
// and only redefines Equal and Hash: two wrapped positions are equal when
// one is an image of the other under the group, and every position hashes as
// the minimal image of its orbit.
package symmetry

import (
	"retrograde/game"

	"github.com/samber/lo"
)

// Transformable is a position on a rectangular board.
type Transformable[P any, M any] interface {
	game.Position[P, M]
	Dims() (width, height int)
	// ReflectRows reflects the board across its horizontal axis.
	ReflectRows() P
	// ReflectCols reflects the board across its vertical axis.
	ReflectCols() P
	// Transpose reflects the board across its main diagonal. It swaps width
	// and height.
	Transpose() P
	// Compare is a total order over positions. It returns 0 exactly when
	// Equal reports true.
	Compare(P) int
}

// Reflections returns the images of p under identity, row reflection,
// column reflection and both. The group is valid for any board shape.
func Reflections[P Transformable[P, M], M any](p P) []P {
	rows := p.ReflectRows()
	return []P{p, rows, p.ReflectCols(), rows.ReflectCols()}
}

// Symmetries returns the 8 images of p under the symmetry group of the
// square: the reflections of p and the reflections of its transpose. The
// rotations are among them (rotating by 90 degrees is a transpose followed by
// a column reflection). Only meaningful on square boards.
func Symmetries[P Transformable[P, M], M any](p P) []P {
	return append(Reflections[P, M](p), Reflections[P, M](p.Transpose())...)
}

// Canonical returns the minimal image under Compare.
func Canonical[P Transformable[P, M], M any](images []P) P {
	return lo.MinBy(images, func(a P, b P) bool {
		return a.Compare(b) < 0
	})
}

func containsImage[P Transformable[P, M], M any](images []P, p P) bool {
	return lo.ContainsBy(images, p.Equal)
}
