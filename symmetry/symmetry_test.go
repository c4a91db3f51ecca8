package symmetry_test

import (
	"errors"
	"testing"

	"retrograde/games/orderchaos"
	"retrograde/games/tictactoe"
	"retrograde/symmetry"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type (
	board     = tictactoe.Position
	boardMove = tictactoe.Move
)

func TestImages(t *testing.T) {
	p := tictactoe.MustParse("XO./.../...", 3)

	t.Run("reflections", func(t *testing.T) {
		images := symmetry.Reflections[board, boardMove](p)

		require.Len(t, images, 4)
		require.ElementsMatch(t, []string{"XO./.../...", ".../.../XO.", ".OX/.../...", ".../.../.OX"}, names(images))
	})

	t.Run("symmetries", func(t *testing.T) {
		images := symmetry.Symmetries[board, boardMove](p)

		require.Len(t, images, 8)
		require.Len(t, distinct(images), 8, "An asymmetric board should have 8 distinct images")
	})

	t.Run("symmetric board has fewer distinct images", func(t *testing.T) {
		center := tictactoe.MustParse(".../.X./...", 3)

		require.Len(t, distinct(symmetry.Symmetries[board, boardMove](center)), 1)
	})

	t.Run("canonical is the minimum", func(t *testing.T) {
		images := symmetry.Symmetries[board, boardMove](p)
		canonical := symmetry.Canonical[board, boardMove](images)

		for _, image := range images {
			require.LessOrEqual(t, canonical.Compare(image), 0)
		}
	})
}

func TestNewDihedral(t *testing.T) {
	t.Run("square board", func(t *testing.T) {
		d, err := symmetry.NewDihedral[board, boardMove](tictactoe.NewSquare(3))

		require.NoError(t, err)
		require.True(t, d.Unwrap().Equal(tictactoe.NewSquare(3)))
	})

	t.Run("non-square board", func(t *testing.T) {
		_, err := symmetry.NewDihedral[board, boardMove](tictactoe.New(4, 3, 3))

		require.Error(t, err)
		require.True(t, errors.Is(err, symmetry.ErrNotSquare))
		require.Panics(t, func() {
			symmetry.MustDihedral[board, boardMove](tictactoe.New(4, 3, 3))
		})
	})
}

func TestWrappersDelegate(t *testing.T) {
	p := tictactoe.MustParse("XX./OO./...", 3)
	r := symmetry.Reflect[board, boardMove](p)
	d := symmetry.MustDihedral[board, boardMove](p)

	require.Equal(t, p.Moves(), r.Moves())
	require.Equal(t, p.Moves(), d.Moves())
	require.Equal(t, p.Primitive(), r.Primitive())

	move := tictactoe.Move{Row: 0, Col: 2}
	require.True(t, r.Play(move).Unwrap().Equal(p.Play(move)))
	require.True(t, d.Play(move).Unwrap().Equal(p.Play(move)))
	require.Equal(t, p.Play(move).Primitive(), d.Play(move).Primitive())
	require.Equal(t, p.String(), d.String())
}

func TestEquality(t *testing.T) {
	t.Run("mirror images are equal", func(t *testing.T) {
		a := symmetry.Reflect[board, boardMove](tictactoe.MustParse("X../.../...", 3))
		b := symmetry.Reflect[board, boardMove](tictactoe.MustParse("..X/.../...", 3))

		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("rotations need the dihedral group", func(t *testing.T) {
		a := tictactoe.MustParse("XO./.../...", 3)
		b := tictactoe.MustParse("..X/..O/...", 3) // a rotated a quarter turn clockwise

		require.False(t, symmetry.Reflect[board, boardMove](a).Equal(symmetry.Reflect[board, boardMove](b)))
		require.True(t, symmetry.MustDihedral[board, boardMove](a).Equal(symmetry.MustDihedral[board, boardMove](b)))
	})

	t.Run("different orbits differ", func(t *testing.T) {
		corner := symmetry.MustDihedral[board, boardMove](tictactoe.MustParse("X../.../...", 3))
		edge := symmetry.MustDihedral[board, boardMove](tictactoe.MustParse(".X./.../...", 3))

		require.False(t, corner.Equal(edge))
	})
}

// playout visits the positions of one random game from root.
func playout[P interface {
	Moves() []M
	Play(M) P
}, M any](r *rand.Rand, root P, visit func(P)) {
	p := root
	for {
		visit(p)
		moves := p.Moves()
		if len(moves) == 0 {
			return
		}
		p = p.Play(moves[r.Intn(len(moves))])
	}
}

func TestReflectionSoundness(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, root := range []board{tictactoe.New(4, 3, 3), tictactoe.New(5, 2, 2), tictactoe.NewSquare(4)} {
		for range 50 {
			playout[board, boardMove](r, root, func(p board) {
				wrapped := symmetry.Reflect[board, boardMove](p)
				for _, image := range symmetry.Reflections[board, boardMove](p) {
					other := symmetry.Reflect[board, boardMove](image)
					require.True(t, wrapped.Equal(other), "%s and %s", p, image)
					require.True(t, other.Equal(wrapped), "%s and %s", image, p)
					require.Equal(t, wrapped.Hash(), other.Hash(), "%s and %s", p, image)
				}
			})
		}
	}
}

func TestDihedralSoundness(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	t.Run("tictactoe", func(t *testing.T) {
		for _, root := range []board{tictactoe.NewSquare(3), tictactoe.New(4, 4, 3)} {
			for range 50 {
				playout[board, boardMove](r, root, func(p board) {
					wrapped := symmetry.MustDihedral[board, boardMove](p)
					for _, image := range symmetry.Symmetries[board, boardMove](p) {
						other := symmetry.MustDihedral[board, boardMove](image)
						require.True(t, wrapped.Equal(other), "%s and %s", p, image)
						require.Equal(t, wrapped.Hash(), other.Hash(), "%s and %s", p, image)
					}
				})
			}
		}
	})

	t.Run("orderchaos", func(t *testing.T) {
		for range 50 {
			playout[orderchaos.Position, orderchaos.Move](r, orderchaos.New(4, 4, 4), func(p orderchaos.Position) {
				wrapped := symmetry.MustDihedral[orderchaos.Position, orderchaos.Move](p)
				for _, image := range symmetry.Symmetries[orderchaos.Position, orderchaos.Move](p) {
					other := symmetry.MustDihedral[orderchaos.Position, orderchaos.Move](image)
					require.True(t, wrapped.Equal(other), "%s and %s", p, image)
					require.Equal(t, wrapped.Hash(), other.Hash(), "%s and %s", p, image)
				}
			})
		}
	})
}

func names(images []board) []string {
	out := make([]string, len(images))
	for i, image := range images {
		out[i] = image.String()
	}
	return out
}

func distinct(images []board) []board {
	out := []board{}
	for _, image := range images {
		seen := false
		for _, o := range out {
			if o.Equal(image) {
				seen = true
			}
		}
		if !seen {
			out = append(out, image)
		}
	}
	return out
}
