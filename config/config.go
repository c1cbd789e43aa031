// Package config loads runtime settings for the gridpath server and CLI from
// the environment, optionally seeded by a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr            = "GRIDPATH_ADDR"
	EnvGinMode         = "GIN_MODE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvGridRows        = "GRID_ROWS"
	EnvGridCols        = "GRID_COLS"
	EnvStartRow        = "START_ROW"
	EnvStartCol        = "START_COL"
	EnvFinishRow       = "FINISH_ROW"
	EnvFinishCol       = "FINISH_COL"
	EnvWallProbability = "WALL_PROBABILITY"
	EnvMazeSeed        = "MAZE_SEED"
)

// Config holds the application's configuration values.
type Config struct {
	Addr            string     // Address the HTTP server listens on
	GinMode         string     // Mode for the Gin framework (release, debug, test)
	LogLevel        string     // logrus level name
	Rows            int        // Default grid height
	Cols            int        // Default grid width
	Start           grid.Coord // Default start cell
	Finish          grid.Coord // Default finish cell
	WallProbability float64    // Wall probability for the random generator
	MazeSeed        int64      // Generator seed; 0 asks the caller to pick one
}

// Default returns the reference deployment settings.
func Default() Config {
	return Config{
		Addr:            ":8080",
		GinMode:         "release",
		LogLevel:        "info",
		Rows:            grid.DefaultRows,
		Cols:            grid.DefaultCols,
		Start:           grid.Coord{Row: grid.DefaultStartRow, Col: grid.DefaultStartCol},
		Finish:          grid.Coord{Row: grid.DefaultFinishRow, Col: grid.DefaultFinishCol},
		WallProbability: maze.DefaultWallProbability,
	}
}

// Load reads an optional .env file and overlays environment variables on
// Default. A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv overlays the process environment on Default and validates the
// resulting grid geometry.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	cfg.Addr = getEnvWithDefault(EnvAddr, cfg.Addr)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)

	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridRows, &cfg.Rows},
		{EnvGridCols, &cfg.Cols},
		{EnvStartRow, &cfg.Start.Row},
		{EnvStartCol, &cfg.Start.Col},
		{EnvFinishRow, &cfg.Finish.Row},
		{EnvFinishCol, &cfg.Finish.Col},
	}
	for _, v := range ints {
		if *v.dst, err = getEnvAsInt(v.key, *v.dst); err != nil {
			return Config{}, err
		}
	}
	if cfg.WallProbability, err = getEnvAsFloat(EnvWallProbability, cfg.WallProbability); err != nil {
		return Config{}, err
	}
	if cfg.MazeSeed, err = getEnvAsInt64(EnvMazeSeed, cfg.MazeSeed); err != nil {
		return Config{}, err
	}

	if !(cfg.WallProbability >= 0 && cfg.WallProbability <= 1) {
		return Config{}, fmt.Errorf("%w: %s must be in [0,1] (%v)", ErrInvalidValue, EnvWallProbability, cfg.WallProbability)
	}
	if _, err = cfg.Grid(); err != nil {
		return Config{}, fmt.Errorf("%w: grid geometry: %w", ErrInvalidValue, err)
	}
	return cfg, nil
}

// Grid builds the empty board described by cfg.
func (c Config) Grid() (*grid.Grid, error) {
	return grid.New(c.Rows, c.Cols, c.Start, c.Finish)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer (%q)", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer (%q)", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number (%q)", ErrInvalidValue, key, raw)
	}
	return v, nil
}
