// Package orderchaos is Order and Chaos on an m x n board. Both players may
// place either piece. Order wants k identical pieces in a row; Chaos wins by
// filling the board without one.
package orderchaos

import (
	"cmp"
	"fmt"

	"retrograde/game"
	"retrograde/games/grid"
)

type Player int

const (
	Order Player = iota
	Chaos
)

func (p Player) String() string {
	if p == Order {
		return "order"
	}
	return "chaos"
}

type Move struct {
	Row   int
	Col   int
	Piece grid.Cell
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Piece, m.Row, m.Col)
}

// Position is a board with Order to move after an even number of placements.
type Position struct {
	board grid.Grid
	k     int
}

func New(width, height, k int) Position {
	if k <= 0 {
		panic(fmt.Sprintf("invalid line length %d", k))
	}
	return Position{board: grid.New(width, height), k: k}
}

func Parse(rows string, k int) (Position, error) {
	board, err := grid.Parse(rows)
	if err != nil {
		return Position{}, err
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

func (p Position) Player() Player {
	if (p.board.Count(grid.X)+p.board.Count(grid.O))%2 == 0 {
		return Order
	}
	return Chaos
}

// lined reports whether either piece has k in a row.
func (p Position) lined() bool {
	return p.board.InARow(grid.X, p.k) || p.board.InARow(grid.O, p.k)
}

func (p Position) Primitive() game.Primitive {
	player := p.Player()
	switch {
	case p.lined():
		if player == Order {
			return game.Win
		}
		return game.Lose
	case p.board.Full():
		if player == Chaos {
			return game.Win
		}
		return game.Lose
	default:
		return game.NotPrimitive
	}
}

// Moves lists X then O for every empty cell in row-major order.
func (p Position) Moves() []Move {
	if p.Primitive().IsPrimitive() {
		return nil
	}
	empties := p.board.Empties()
	moves := make([]Move, 0, 2*len(empties))
	for _, point := range empties {
		moves = append(moves,
			Move{Row: point.Row, Col: point.Col, Piece: grid.X},
			Move{Row: point.Row, Col: point.Col, Piece: grid.O},
		)
	}
	return moves
}

func (p Position) Play(move Move) Position {
	if move.Piece == grid.Empty || p.board.At(move.Row, move.Col) != grid.Empty {
		panic(fmt.Sprintf("illegal move %s on %s", move, p.board))
	}
	return Position{board: p.board.With(move.Row, move.Col, move.Piece), k: p.k}
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
