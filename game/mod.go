package game

// Keyed is anything that can serve as a memo table key. Equal positions must
// hash identically; hash equality alone never implies equality.
type Keyed[P any] interface {
	Hash() uint64
	Equal(P) bool
}

// Position is one immutable state of a game. Operations on a Position always
// return a new value.
//
// Every move returned by Moves must be legal, and Play must yield a strict
// successor: no position may be reachable from itself.
type Position[P any, M any] interface {
	Keyed[P]
	// Moves lists the legal moves in a deterministic order. It is empty
	// exactly when Primitive reports a definite outcome.
	Moves() []M
	Play(M) P
	Primitive() Primitive
}
