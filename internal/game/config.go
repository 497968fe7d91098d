package game

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/samdwyer/straightahead/internal/ui"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel        = "STRAIGHTAHEAD_LEVEL"
	EnvCellWidth    = "STRAIGHTAHEAD_CELL_WIDTH"
	EnvCellHeight   = "STRAIGHTAHEAD_CELL_HEIGHT"
	EnvFrameRate    = "STRAIGHTAHEAD_FPS"
	EnvGoalSpeed    = "STRAIGHTAHEAD_GOAL_SPEED"
	EnvSound        = "STRAIGHTAHEAD_SOUND"
	EnvVolume       = "STRAIGHTAHEAD_VOLUME"
	EnvSpectateAddr = "STRAIGHTAHEAD_SPECTATE_ADDR"
	EnvLogFile      = "STRAIGHTAHEAD_LOG_FILE"
)

// Config holds game configuration options.
type Config struct {
	// Level is the ID of the level to play from levels.json.
	Level string

	// CellWidth and CellHeight are the terminal columns and rows drawn per grid cell.
	// Mouse clicks map to cells by floor division by these sizes.
	CellWidth  int
	CellHeight int

	// FrameRate is how many times per second the goal animation advances.
	FrameRate int

	// GoalSpeed is the goal's spin in radians per second.
	GoalSpeed float64

	Sound  bool
	Volume float64 // 0..1

	// SpectateAddr is the listen address for the spectator feed. Empty disables it.
	SpectateAddr string

	LogFile string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Level:      "straight-ahead",
		CellWidth:  9,
		CellHeight: 5,
		FrameRate:  30,
		GoalSpeed:  2.0,
		Volume:     0.5,
		LogFile:    "straightahead.log",
	}
}

// ConfigFromEnv overlays environment variables on the defaults.
// getenv is typically os.Getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvLevel); v != "" {
		cfg.Level = v
	}
	if v := getenv(EnvSpectateAddr); v != "" {
		cfg.SpectateAddr = v
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvCellWidth, &cfg.CellWidth},
		{EnvCellHeight, &cfg.CellHeight},
		{EnvFrameRate, &cfg.FrameRate},
	}
	for _, f := range ints {
		v := getenv(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{EnvGoalSpeed, &cfg.GoalSpeed},
		{EnvVolume, &cfg.Volume},
	}
	for _, f := range floats {
		v := getenv(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}

	if v := getenv(EnvSound); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSound, err)
		}
		cfg.Sound = b
	}

	return cfg, cfg.Validate()
}

// Validate checks that every option is usable. Errors name the environment
// variable that sets the offending option.
func (c Config) Validate() error {
	if c.Level == "" {
		return fmt.Errorf("%s: level must be set", EnvLevel)
	}
	if c.CellWidth < ui.MinCellSize {
		return fmt.Errorf("%s: cell width %d is below the minimum %d", EnvCellWidth, c.CellWidth, ui.MinCellSize)
	}
	if c.CellHeight < ui.MinCellSize {
		return fmt.Errorf("%s: cell height %d is below the minimum %d", EnvCellHeight, c.CellHeight, ui.MinCellSize)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%s: frame rate must be positive, got %d", EnvFrameRate, c.FrameRate)
	}
	if math.IsNaN(c.GoalSpeed) || math.IsInf(c.GoalSpeed, 0) {
		return fmt.Errorf("%s: goal speed must be finite, got %v", EnvGoalSpeed, c.GoalSpeed)
	}
	// NaN fails every comparison, so it is checked on its own.
	if math.IsNaN(c.Volume) || c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%s: volume must be within 0..1, got %v", EnvVolume, c.Volume)
	}
	return nil
}

// FrameInterval returns the time between animation frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Geometry returns the cell geometry for rendering and hit testing.
func (c Config) Geometry() ui.Geometry {
	return ui.Geometry{CellWidth: c.CellWidth, CellHeight: c.CellHeight}
}
