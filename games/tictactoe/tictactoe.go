// Package tictactoe is m x n tic-tac-toe where k marks in a row win.
package tictactoe

import (
	"cmp"
	"fmt"

	"retrograde/game"
	"retrograde/games/grid"
)

type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Position is a board with X to move when both players placed the same
// number of marks.
type Position struct {
	board grid.Grid
	k     int
}

// New returns the empty width x height board where k in a row wins.
func New(width, height, k int) Position {
	if k <= 0 {
		panic(fmt.Sprintf("invalid line length %d", k))
	}
	return Position{board: grid.New(width, height), k: k}
}

// NewSquare is the n x n game with n in a row.
func NewSquare(n int) Position {
	return New(n, n, n)
}

// Parse reads a board such as "X.O/.X./..O".
func Parse(rows string, k int) (Position, error) {
	board, err := grid.Parse(rows)
	if err != nil {
		return Position{}, err
	}
	xs, os := board.Count(grid.X), board.Count(grid.O)
	if xs != os && xs != os+1 {
		return Position{}, fmt.Errorf("unreachable board %q: %d X and %d O", rows, xs, os)
	}
	if k <= 0 {
		return Position{}, fmt.Errorf("invalid line length %d", k)
	}
	return Position{board: board, k: k}, nil
}

func MustParse(rows string, k int) Position {
	p, err := Parse(rows, k)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Position) Board() grid.Grid {
	return p.board
}

// Player returns the mark of the player to move.
func (p Position) Player() grid.Cell {
	if p.board.Count(grid.X) > p.board.Count(grid.O) {
		return grid.O
	}
	return grid.X
}

func (p Position) Primitive() game.Primitive {
	switch {
	case p.board.InARow(p.Player().Other(), p.k):
		return game.Lose
	case p.board.Full():
		return game.Tie
	default:
		return game.NotPrimitive
	}
}

func (p Position) Moves() []Move {
	if p.Primitive().IsPrimitive() {
		return nil
	}
	empties := p.board.Empties()
	moves := make([]Move, len(empties))
	for i, point := range empties {
		moves[i] = Move{Row: point.Row, Col: point.Col}
	}
	return moves
}

func (p Position) Play(move Move) Position {
	if p.board.At(move.Row, move.Col) != grid.Empty {
		panic(fmt.Sprintf("illegal move %s on %s", move, p.board))
	}
	return Position{board: p.board.With(move.Row, move.Col, p.Player()), k: p.k}
}

func (p Position) Hash() uint64 {
	return p.board.Hash()
}

func (p Position) Equal(other Position) bool {
	return p.k == other.k && p.board.Equal(other.board)
}

func (p Position) Dims() (int, int) {
	return p.board.Width(), p.board.Height()
}

func (p Position) ReflectRows() Position {
	return Position{board: p.board.ReflectRows(), k: p.k}
}

func (p Position) ReflectCols() Position {
	return Position{board: p.board.ReflectCols(), k: p.k}
}

func (p Position) Transpose() Position {
	return Position{board: p.board.Transpose(), k: p.k}
}

// Compare orders by line length, then by board.
func (p Position) Compare(other Position) int {
	return cmp.Or(cmp.Compare(p.k, other.k), p.board.Compare(other.board))
}

func (p Position) String() string {
	return p.board.String()
}
