// Package takeaway is the subtraction game: players alternately remove one
// of a fixed set of amounts from a pile of counters. The player who cannot
// move loses.
package takeaway

import (
	"fmt"
	"slices"

	"retrograde/game"
)

type Move int

// Position is the pile size together with the allowed takes. The takes are
// shared between all positions of one game and never modified.
type Position struct {
	count int
	takes []int
}

// New returns a pile of count counters. Takes are deduplicated and sorted.
func New(count int, takes ...int) Position {
	if count < 0 {
		panic(fmt.Sprintf("invalid count %d", count))
	}
	sorted := slices.Clone(takes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for _, take := range sorted {
		if take <= 0 {
			panic(fmt.Sprintf("invalid take %d", take))
		}
	}
	return Position{count: count, takes: sorted}
}

func (p Position) Count() int {
	return p.count
}

// Moves lists the takes that fit in the pile, smallest first.
func (p Position) Moves() []Move {
	moves := []Move{}
	for _, take := range p.takes {
		if take > p.count {
			break
		}
		moves = append(moves, Move(take))
	}
	return moves
}

func (p Position) Play(move Move) Position {
	if int(move) > p.count || !slices.Contains(p.takes, int(move)) {
		panic(fmt.Sprintf("illegal take %d from %d", move, p.count))
	}
	return Position{count: p.count - int(move), takes: p.takes}
}

// Primitive is a loss for the player to move once no take fits.
func (p Position) Primitive() game.Primitive {
	if len(p.takes) == 0 || p.takes[0] > p.count {
		return game.Lose
	}
	return game.NotPrimitive
}

// Hash is the pile size. Positions of one game differ only in their count.
func (p Position) Hash() uint64 {
	return uint64(p.count)
}

func (p Position) Equal(other Position) bool {
	return p.count == other.count && slices.Equal(p.takes, other.takes)
}

func (p Position) String() string {
	return fmt.Sprintf("%d %v", p.count, p.takes)
}
