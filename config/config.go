// Package config reads solver settings from defaults, an optional YAML file,
// RETROGRADE_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"retrograde/meta"
	"retrograde/symmetry"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	KeyGame     = "game"
	KeyCount    = "count"
	KeyTakes    = "takes"
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyK        = "k"
	KeySymmetry = "symmetry"
	KeyValue    = "value"
	KeyOutput   = "output"
	KeyDebug    = "debug"
)

const (
	TakeAway   = "takeaway"
	TicTacToe  = "tictactoe"
	OrderChaos = "orderchaos"

	NoSymmetry = "none"
	Reflection = "reflection"
	Dihedral   = "dihedral"

	OutcomeValue    = "outcome"
	RemotenessValue = "remoteness"
)

var (
	Games      = []string{TakeAway, TicTacToe, OrderChaos}
	Symmetries = []string{NoSymmetry, Reflection, Dihedral}
	Values     = []string{OutcomeValue, RemotenessValue}
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	*viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetDefault(KeyGame, meta.GAME)
	v.SetDefault(KeyCount, meta.COUNT)
	v.SetDefault(KeyTakes, meta.TAKES)
	v.SetDefault(KeyWidth, meta.WIDTH)
	v.SetDefault(KeyHeight, meta.HEIGHT)
	v.SetDefault(KeyK, meta.K)
	v.SetDefault(KeySymmetry, meta.SYMMETRY)
	v.SetDefault(KeyValue, meta.VALUE)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix("retrograde")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{Viper: v}
}

// Load reads the config file at path. An empty path keeps the other sources.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	c.SetConfigFile(path)
	if err := c.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Game() string     { return strings.ToLower(c.GetString(KeyGame)) }
func (c *Config) Count() int       { return c.GetInt(KeyCount) }
func (c *Config) Width() int       { return c.GetInt(KeyWidth) }
func (c *Config) Height() int      { return c.GetInt(KeyHeight) }
func (c *Config) K() int           { return c.GetInt(KeyK) }
func (c *Config) Symmetry() string { return strings.ToLower(c.GetString(KeySymmetry)) }
func (c *Config) Value() string    { return strings.ToLower(c.GetString(KeyValue)) }
func (c *Config) Output() string   { return c.GetString(KeyOutput) }

// Takes returns the allowed take-away amounts. Invalid amounts yield nil;
// Validate reports them.
func (c *Config) Takes() []int {
	takes, err := c.takes()
	if err != nil {
		return nil
	}
	return takes
}

// takes also accepts a comma or space separated string, which is how
// RETROGRADE_TAKES arrives from the environment.
func (c *Config) takes() ([]int, error) {
	raw, ok := c.Get(KeyTakes).(string)
	if !ok {
		return c.GetIntSlice(KeyTakes), nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	takes := make([]int, 0, len(fields))
	for _, field := range fields {
		take, err := cast.ToIntE(field)
		if err != nil {
			return nil, fmt.Errorf("%w: take %q is not a number", ErrInvalid, field)
		}
		takes = append(takes, take)
	}
	return takes, nil
}

// Validate rejects settings that cannot describe a solvable game.
func (c *Config) Validate() error {
	if !lo.Contains(Games, c.Game()) {
		return fmt.Errorf("%w: unknown game %q, expected one of %v", ErrInvalid, c.Game(), Games)
	}
	if !lo.Contains(Symmetries, c.Symmetry()) {
		return fmt.Errorf("%w: unknown symmetry %q, expected one of %v", ErrInvalid, c.Symmetry(), Symmetries)
	}
	if !lo.Contains(Values, c.Value()) {
		return fmt.Errorf("%w: unknown value %q, expected one of %v", ErrInvalid, c.Value(), Values)
	}

	if c.Game() == TakeAway {
		return c.validateTakeAway()
	}
	return c.validateBoard()
}

func (c *Config) validateTakeAway() error {
	if c.Count() < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalid, c.Count())
	}
	takes, err := c.takes()
	if err != nil {
		return err
	}
	if len(takes) == 0 {
		return fmt.Errorf("%w: no takes", ErrInvalid)
	}
	if bad, found := lo.Find(takes, func(take int) bool { return take <= 0 }); found {
		return fmt.Errorf("%w: take %d is not positive", ErrInvalid, bad)
	}
	if c.Symmetry() != NoSymmetry {
		return fmt.Errorf("%w: %s has no board to fold by %s", ErrInvalid, TakeAway, c.Symmetry())
	}
	return nil
}

func (c *Config) validateBoard() error {
	width, height, k := c.Width(), c.Height(), c.K()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, width, height)
	}
	if k <= 0 || k > max(width, height) {
		return fmt.Errorf("%w: %d in a row does not fit a %dx%d board", ErrInvalid, k, width, height)
	}
	if c.Symmetry() == Dihedral && width != height {
		return fmt.Errorf("%w: %w: board is %dx%d", ErrInvalid, symmetry.ErrNotSquare, width, height)
	}
	return nil
}

// SanitizedSettings returns the effective settings for logging. The output
// directory is reduced to its presence.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	settings[KeyOutput] = c.Output() != ""
	if c.Game() == TakeAway {
		delete(settings, KeyWidth)
		delete(settings, KeyHeight)
		delete(settings, KeyK)
	} else {
		delete(settings, KeyCount)
		delete(settings, KeyTakes)
	}
	return settings
}
