package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
)

var allKeys = []string{
	config.EnvAddr, config.EnvGinMode, config.EnvLogLevel,
	config.EnvGridRows, config.EnvGridCols,
	config.EnvStartRow, config.EnvStartCol,
	config.EnvFinishRow, config.EnvFinishCol,
	config.EnvWallProbability, config.EnvMazeSeed,
}

// clearEnv blanks every key; t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 50, cfg.Cols)
	assert.Equal(t, grid.Coord{Row: 10, Col: 15}, cfg.Start)
	assert.Equal(t, grid.Coord{Row: 10, Col: 35}, cfg.Finish)
	assert.Equal(t, 0.25, cfg.WallProbability)
	assert.Zero(t, cfg.MazeSeed)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvGinMode, "debug")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvGridRows, "5")
	t.Setenv(config.EnvGridCols, "7")
	t.Setenv(config.EnvStartRow, "0")
	t.Setenv(config.EnvStartCol, "0")
	t.Setenv(config.EnvFinishRow, "4")
	t.Setenv(config.EnvFinishCol, "6")
	t.Setenv(config.EnvWallProbability, "0.4")
	t.Setenv(config.EnvMazeSeed, "12345")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Rows)
	assert.Equal(t, 7, cfg.Cols)
	assert.Equal(t, grid.Coord{}, cfg.Start)
	assert.Equal(t, grid.Coord{Row: 4, Col: 6}, cfg.Finish)
	assert.Equal(t, 0.4, cfg.WallProbability)
	assert.Equal(t, int64(12345), cfg.MazeSeed)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 35, g.Len())
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"RowsNotInt", config.EnvGridRows, "many"},
		{"SeedNotInt", config.EnvMazeSeed, "1.5"},
		{"ProbabilityNotFloat", config.EnvWallProbability, "quarter"},
		{"ProbabilityTooHigh", config.EnvWallProbability, "1.01"},
		{"ProbabilityNaN", config.EnvWallProbability, "NaN"},
		{"ZeroCols", config.EnvGridCols, "0"},
		{"StartOutside", config.EnvStartRow, "20"},
		{"StartIsFinish", config.EnvStartCol, "35"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	for _, k := range allKeys {
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRID_ROWS=9\nGRID_COLS=9\nSTART_ROW=0\nSTART_COL=0\nFINISH_ROW=8\nFINISH_COL=8\n"), 0o600))
	chdir(t, dir)
	t.Cleanup(func() {
		for _, k := range allKeys {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, grid.Coord{Row: 8, Col: 8}, cfg.Finish)
}

func TestLoad_NoDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
