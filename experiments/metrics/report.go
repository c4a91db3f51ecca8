package metrics

import (
	"cmp"
	"slices"

	"retrograde/solver"
	"retrograde/value"
)

// Report summarizes one solve from an initial position.
type Report struct {
	Game       string
	Symmetry   string
	Value      string
	Root       string // recursive value of the initial position
	Outcome    value.Outcome
	Remoteness value.Remoteness // Infinite when the value does not track it
	Entries    int              // memo table size after the solve
	Collisions int
	Outcomes   []OutcomeRecord
	Rows       []RemotenessRecord // empty unless remoteness was computed
	Solver     solver.Metrics
}

type OutcomeRecord struct {
	Outcome   value.Outcome
	Positions int
}

type RemotenessRecord struct {
	Outcome    value.Outcome
	Remoteness value.Remoteness
	Positions  int
}

// Count returns the number of memoized positions with outcome o.
func (r Report) Count(o value.Outcome) int {
	for _, record := range r.Outcomes {
		if record.Outcome == o {
			return record.Positions
		}
	}
	return 0
}

// SortRemoteness orders records by outcome, then by remoteness.
func SortRemoteness(records []RemotenessRecord) {
	slices.SortFunc(records, func(a, b RemotenessRecord) int {
		return cmp.Or(cmp.Compare(a.Outcome, b.Outcome), cmp.Compare(a.Remoteness, b.Remoteness))
	})
}
