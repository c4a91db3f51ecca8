package solver

import (
	"errors"
	"fmt"

	"retrograde/game"
	"retrograde/value"

	"github.com/rs/zerolog/log"
)

// ErrNoMoves means an adapter reported a position as not primitive but gave
// it no legal moves.
var ErrNoMoves = errors.New("non-primitive position has no legal moves")

type Option func(s *settings)

type settings struct {
	metrics Collector
}

// WithMetrics counts lookups, memo hits, primitives and expansions.
func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewCollector()
	}
}

// WithCollector installs a caller-provided collector.
func WithCollector(collector Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Solver exhaustively solves a game by depth-first, post-order search over
// its positions, memoizing every visited position. It is not safe for
// concurrent use.
type Solver[P game.Position[P, M], M any, V any] struct {
	rule    value.Rule[V]
	table   *Table[P, V]
	metrics Collector
	last    Metrics
}

func New[P game.Position[P, M], M any, V any](rule value.Rule[V], options ...Option) *Solver[P, M, V] {
	return NewWithTable[P, M](rule, NewTable[P, V](), options...)
}

// NewWithTable starts from a pre-seeded table, which the solver then owns.
func NewWithTable[P game.Position[P, M], M any, V any](rule value.Rule[V], table *Table[P, V], options ...Option) *Solver[P, M, V] {
	if rule == nil {
		panic("solver needs a recursive value rule")
	}
	if table == nil {
		table = NewTable[P, V]()
	}

	s := &settings{metrics: NewNoCollector()}
	for _, option := range options {
		option(s)
	}

	return &Solver[P, M, V]{
		rule:    rule,
		table:   table,
		metrics: s.metrics,
	}
}

// Solve returns the recursive value of position. It panics if the adapter
// violates the position contract.
func (s *Solver[P, M, V]) Solve(position P) V {
	s.metrics.Start()
	result := s.solve(position)
	s.last = s.metrics.Complete()

	log.Debug().
		Int("entries", s.table.Len()).
		Int("collisions", s.table.Collisions()).
		Int64("lookups", s.last.Lookups).
		Int64("hits", s.last.Hits).
		Int64("expansions", s.last.Expansions).
		Dur("duration", s.last.Duration).
		Msg("solved position")
	return result
}

func (s *Solver[P, M, V]) solve(position P) V {
	s.metrics.AddLookup()
	if result, ok := s.table.Get(position); ok {
		s.metrics.AddHit()
		return result
	}

	result := s.solveNotMemoized(position)
	s.table.Put(position, result)
	return result
}

func (s *Solver[P, M, V]) solveNotMemoized(position P) V {
	if result, ok := s.rule.FromPrimitive(position.Primitive()); ok {
		s.metrics.AddPrimitive()
		return result
	}

	moves := position.Moves()
	if len(moves) == 0 {
		panic(fmt.Errorf("%w: %v", ErrNoMoves, position))
	}

	children := make([]V, 0, len(moves))
	for _, move := range moves {
		children = append(children, s.solve(position.Play(move)))
	}

	s.metrics.AddExpansion()
	return s.rule.Aggregate(children)
}

func (s *Solver[P, M, V]) Table() *Table[P, V] {
	return s.table
}

// Metrics returns the collector snapshot taken when the last Solve finished.
// It is zero unless WithMetrics or WithCollector was given.
func (s *Solver[P, M, V]) Metrics() Metrics {
	return s.last
}
