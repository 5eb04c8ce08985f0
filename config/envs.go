// Package config loads host settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidValue is returned, wrapped with the variable name, when an
// environment value cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvWidth       = "GRIDPATH_WIDTH"
	EnvHeight      = "GRIDPATH_HEIGHT"
	EnvSeed        = "GRIDPATH_SEED"
	EnvWallCap     = "GRIDPATH_WALL_CAP"
	EnvStrategy    = "GRIDPATH_STRATEGY"
	EnvSource      = "GRIDPATH_SOURCE"
	EnvDestination = "GRIDPATH_DESTINATION"
	EnvDelay       = "GRIDPATH_DELAY"
	EnvPNG         = "GRIDPATH_PNG"
	EnvCellSize    = "GRIDPATH_CELL_SIZE"
	EnvMetrics     = "GRIDPATH_METRICS"
	EnvHeadless    = "GRIDPATH_HEADLESS"
	EnvLogLevel    = "GRIDPATH_LOG_LEVEL"
)

// Config holds the host's settings.
type Config struct {
	Width       int             // grid columns
	Height      int             // grid rows
	Seed        int64           // wall and endpoint seed; 0 means clock
	WallCap     int             // walls per column; -1 means Width/3
	Strategy    search.Strategy // algorithm to run
	Source      *gridmap.Point  // nil means random
	Destination *gridmap.Point  // nil means random
	Delay       time.Duration   // pause per visited cell in the terminal
	PNGPath     string          // write the final canvas here when set
	CellSize    int             // PNG pixels per cell
	MetricsPath string          // write Prometheus text metrics here when set
	Headless    bool            // skip the terminal
	LogLevel    slog.Level      // minimum log level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Width:    100,
		Height:   100,
		WallCap:  -1,
		Strategy: search.DFSIterative,
		CellSize: 6,
		LogLevel: slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment without overriding variables already set, then builds a
// Config from the environment on top of Default. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment on top of Default.
// Empty variables count as unset.
func FromEnv() (Config, error) {
	c := Default()
	var err error

	if c.Width, err = getEnvAsInt(EnvWidth, c.Width); err != nil {
		return Config{}, err
	}
	if c.Height, err = getEnvAsInt(EnvHeight, c.Height); err != nil {
		return Config{}, err
	}
	if c.WallCap, err = getEnvAsInt(EnvWallCap, c.WallCap); err != nil {
		return Config{}, err
	}
	if c.CellSize, err = getEnvAsInt(EnvCellSize, c.CellSize); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, invalid(EnvSeed, v, err)
		}
	}
	if v, ok := lookup(EnvStrategy); ok {
		if c.Strategy, err = search.ParseStrategy(v); err != nil {
			return Config{}, invalid(EnvStrategy, v, err)
		}
	}
	if c.Source, err = getEnvAsPoint(EnvSource); err != nil {
		return Config{}, err
	}
	if c.Destination, err = getEnvAsPoint(EnvDestination); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvDelay); ok {
		if c.Delay, err = time.ParseDuration(v); err != nil {
			return Config{}, invalid(EnvDelay, v, err)
		}
	}
	if v, ok := lookup(EnvHeadless); ok {
		if c.Headless, err = strconv.ParseBool(v); err != nil {
			return Config{}, invalid(EnvHeadless, v, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err = c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, invalid(EnvLogLevel, v, err)
		}
	}
	c.PNGPath = getEnvWithDefault(EnvPNG, "")
	c.MetricsPath = getEnvWithDefault(EnvMetrics, "")

	return c, nil
}

// ParsePoint parses "x,y" (spaces allowed around either number).
func ParsePoint(s string) (gridmap.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridmap.Point{}, fmt.Errorf("%w: point %q, want x,y", ErrInvalidValue, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridmap.Point{}, fmt.Errorf("%w: point %q: %v", ErrInvalidValue, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridmap.Point{}, fmt.Errorf("%w: point %q: %v", ErrInvalidValue, s, err)
	}
	return gridmap.Point{X: x, Y: y}, nil
}

// lookup returns a trimmed, non-empty environment value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer variable or returns defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(key, v, err)
	}
	return n, nil
}

// getEnvAsPoint retrieves an "x,y" variable; nil when not set.
func getEnvAsPoint(key string) (*gridmap.Point, error) {
	v, ok := lookup(key)
	if !ok {
		return nil, nil
	}
	p, err := ParsePoint(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &p, nil
}

func invalid(key, value string, cause error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, value, cause)
}
