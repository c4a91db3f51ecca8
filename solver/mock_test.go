package solver

import (
	"fmt"

	"retrograde/game"
)

// mockGame is a hand-written game graph. Positions are node ids.
type mockGame struct {
	edges      map[int][]int
	primitives map[int]game.Primitive
	moveCalls  map[int]int
}

func newMockGame() *mockGame {
	return &mockGame{
		edges:      map[int][]int{},
		primitives: map[int]game.Primitive{},
		moveCalls:  map[int]int{},
	}
}

func (g *mockGame) edge(from int, to ...int) *mockGame {
	g.edges[from] = append(g.edges[from], to...)
	return g
}

func (g *mockGame) terminal(id int, primitive game.Primitive) *mockGame {
	g.primitives[id] = primitive
	return g
}

func (g *mockGame) at(id int) mockPosition {
	return mockPosition{id: id, game: g}
}

type mockMove struct {
	to int
}

type mockPosition struct {
	id   int
	game *mockGame
}

func (p mockPosition) Hash() uint64 {
	return uint64(p.id)
}

func (p mockPosition) Equal(other mockPosition) bool {
	return p.id == other.id
}

func (p mockPosition) Moves() []mockMove {
	p.game.moveCalls[p.id]++
	moves := []mockMove{}
	for _, to := range p.game.edges[p.id] {
		moves = append(moves, mockMove{to: to})
	}
	return moves
}

func (p mockPosition) Play(move mockMove) mockPosition {
	return p.game.at(move.to)
}

func (p mockPosition) Primitive() game.Primitive {
	return p.game.primitives[p.id]
}

func (p mockPosition) String() string {
	return fmt.Sprintf("node %d", p.id)
}

// collidingKey hashes every key into the same bucket.
type collidingKey struct {
	id int
}

func (k collidingKey) Hash() uint64 {
	return 42
}

func (k collidingKey) Equal(other collidingKey) bool {
	return k.id == other.id
}
