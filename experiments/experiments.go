// Package experiments solves the configured game from its initial position
// and summarizes the memo table.
package experiments

import (
	"fmt"

	"retrograde/config"
	"retrograde/experiments/metrics"
	"retrograde/game"
	"retrograde/games/orderchaos"
	"retrograde/games/takeaway"
	"retrograde/games/tictactoe"
	"retrograde/solver"
	"retrograde/symmetry"
	"retrograde/value"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Run validates cfg and solves the game it describes.
func Run(cfg *config.Config) (metrics.Report, error) {
	if err := cfg.Validate(); err != nil {
		return metrics.Report{}, err
	}

	switch cfg.Game() {
	case config.TakeAway:
		return runValue[takeaway.Position, takeaway.Move](cfg, takeaway.New(cfg.Count(), cfg.Takes()...))
	case config.TicTacToe:
		return runBoard[tictactoe.Position, tictactoe.Move](cfg, tictactoe.New(cfg.Width(), cfg.Height(), cfg.K()))
	case config.OrderChaos:
		return runBoard[orderchaos.Position, orderchaos.Move](cfg, orderchaos.New(cfg.Width(), cfg.Height(), cfg.K()))
	default:
		return metrics.Report{}, fmt.Errorf("%w: unknown game %q", config.ErrInvalid, cfg.Game())
	}
}

// Write stores report as CSV under a timestamped subfolder of dir and returns
// that subfolder.
func Write(dir string, report metrics.Report) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSummary([]metrics.Report{report})
	if err != nil {
		return "", fmt.Errorf("failed to store summary: %w", err)
	}
	log.Info().Msg("stored summary")

	err = writer.WriteRemoteness(report)
	if err != nil {
		return "", fmt.Errorf("failed to store remoteness table: %w", err)
	}
	log.Info().Msg("stored remoteness table")

	return writer.Dir(), nil
}

func runBoard[P symmetry.Transformable[P, M], M any](cfg *config.Config, root P) (metrics.Report, error) {
	switch cfg.Symmetry() {
	case config.Reflection:
		return runValue[symmetry.Reflected[P, M], M](cfg, symmetry.Reflect[P, M](root))
	case config.Dihedral:
		folded, err := symmetry.NewDihedral[P, M](root)
		if err != nil {
			return metrics.Report{}, fmt.Errorf("failed to fold %v: %w", root, err)
		}
		return runValue[symmetry.Dihedral[P, M], M](cfg, folded)
	default:
		return runValue[P, M](cfg, root)
	}
}

func runValue[P game.Position[P, M], M any](cfg *config.Config, root P) (metrics.Report, error) {
	switch cfg.Value() {
	case config.RemotenessValue:
		return run[P, M, value.Result](cfg, root, value.ResultRule{}), nil
	default:
		return run[P, M, value.Outcome](cfg, root, value.OutcomeRule{}), nil
	}
}

func run[P game.Position[P, M], M any, V value.Shipped](cfg *config.Config, root P, rule value.Rule[V]) metrics.Report {
	log.Info().Msgf("starting %s solve (symmetry=%s, value=%s)...", cfg.Game(), cfg.Symmetry(), cfg.Value())

	s := solver.New[P, M](rule, solver.WithMetrics())
	v := s.Solve(root)
	outcome, remoteness, _ := value.Split(v)

	report := metrics.Report{
		Game:       cfg.Game(),
		Symmetry:   cfg.Symmetry(),
		Value:      cfg.Value(),
		Root:       fmt.Sprint(v),
		Outcome:    outcome,
		Remoteness: remoteness,
		Entries:    s.Table().Len(),
		Collisions: s.Table().Collisions(),
		Solver:     s.Metrics(),
	}
	report.Outcomes, report.Rows = tally(s.Table().Values())

	log.Info().
		Str("root", report.Root).
		Int("entries", report.Entries).
		Int("collisions", report.Collisions).
		Dur("duration", report.Solver.Duration).
		Msgf("completed %s solve", cfg.Game())
	return report
}

func tally[V value.Shipped](values []V) ([]metrics.OutcomeRecord, []metrics.RemotenessRecord) {
	outcomes := lo.CountValuesBy(values, func(v V) value.Outcome {
		o, _, _ := value.Split(v)
		return o
	})
	byOutcome := lo.FilterMap(value.Outcomes(), func(o value.Outcome, _ int) (metrics.OutcomeRecord, bool) {
		return metrics.OutcomeRecord{Outcome: o, Positions: outcomes[o]}, outcomes[o] > 0
	})

	tracked := lo.FilterMap(values, func(v V, _ int) (value.Result, bool) {
		o, r, ok := value.Split(v)
		return value.Result{Outcome: o, Remoteness: r}, ok
	})
	byRemoteness := lo.MapToSlice(lo.CountValues(tracked), func(r value.Result, n int) metrics.RemotenessRecord {
		return metrics.RemotenessRecord{Outcome: r.Outcome, Remoteness: r.Remoteness, Positions: n}
	})
	metrics.SortRemoteness(byRemoteness)

	return byOutcome, byRemoteness
}
