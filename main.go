package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"retrograde/config"
	"retrograde/experiments"
	"retrograde/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfg        = config.New()
	configPath string

	rootCmd = &cobra.Command{
		Use:   "retrograde",
		Short: "Strongly solve small two-player games by memoized retrograde search",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			if err := cfg.Load(configPath); err != nil {
				return err
			}
			setupLogger(cfg.GetBool(config.KeyDebug))
			return nil
		},
		SilenceUsage: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve the configured game from its initial position",
		RunE:  solve,
	}

	gamesCmd = &cobra.Command{
		Use:   "games",
		Short: "List the games, symmetries and values that can be solved",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("games:      %s\n", strings.Join(config.Games, ", "))
			fmt.Printf("symmetries: %s\n", strings.Join(config.Symmetries, ", "))
			fmt.Printf("values:     %s\n", strings.Join(config.Values, ", "))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool(config.KeyDebug, false, "enable debug logging")

	flags := solveCmd.Flags()
	flags.String(config.KeyGame, meta.GAME, "game to solve: "+strings.Join(config.Games, "|"))
	flags.Int(config.KeyCount, meta.COUNT, "initial pile size (takeaway)")
	flags.IntSlice(config.KeyTakes, meta.TAKES, "amounts a player may take (takeaway)")
	flags.Int(config.KeyWidth, meta.WIDTH, "board width (tictactoe, orderchaos)")
	flags.Int(config.KeyHeight, meta.HEIGHT, "board height (tictactoe, orderchaos)")
	flags.Int(config.KeyK, meta.K, "marks in a row that end the game (tictactoe, orderchaos)")
	flags.String(config.KeySymmetry, meta.SYMMETRY, "symmetry folding: "+strings.Join(config.Symmetries, "|"))
	flags.String(config.KeyValue, meta.VALUE, "recursive value: "+strings.Join(config.Values, "|"))
	flags.String(config.KeyOutput, "", "directory for CSV reports, empty to skip")

	rootCmd.AddCommand(solveCmd, gamesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

func solve(cmd *cobra.Command, args []string) error {
	log.Info().Msgf("loaded config: %v", cfg.SanitizedSettings())

	report, err := experiments.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s (%d positions)\n", report.Game, report.Root, report.Entries)
	for _, record := range report.Outcomes {
		fmt.Printf("  %-5s %d\n", record.Outcome, record.Positions)
	}

	if cfg.Output() == "" {
		return nil
	}
	dir, err := experiments.Write(cfg.Output(), report)
	if err != nil {
		return err
	}
	log.Info().Msgf("reports written to %s", dir)
	return nil
}
