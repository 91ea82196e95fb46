// Package config loads the settings of a game session. Values come from
// built-in defaults, then an optional HCL file, then MINES_* environment
// variables; the command line applies its flags last.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tomasstrnad1997/minesweeper/mines"
)

type Config struct {
	Rows  int
	Cols  int
	Mines int
	// Seed makes mine placement reproducible. 0 uses the process-wide source.
	Seed int64

	Color      bool
	Locale     string
	LocalesDir string
}

func Default() Config {
	return Config{
		Rows:   9,
		Cols:   9,
		Mines:  10,
		Color:  true,
		Locale: "en",
	}
}

// GameConfig returns the board parameters. They are passed through as they
// are; the engine treats non-positive dimensions as an empty board.
func (c Config) GameConfig() mines.GameConfig {
	return mines.GameConfig{Rows: c.Rows, Cols: c.Cols, MineCount: c.Mines}
}

type hclFile struct {
	Game    *hclGame    `hcl:"game,block"`
	Display *hclDisplay `hcl:"display,block"`
}

type hclGame struct {
	Rows  *int   `hcl:"rows,optional"`
	Cols  *int   `hcl:"cols,optional"`
	Mines *int   `hcl:"mines,optional"`
	Seed  *int64 `hcl:"seed,optional"`
}

type hclDisplay struct {
	Color      *bool   `hcl:"color,optional"`
	Locale     *string `hcl:"locale,optional"`
	LocalesDir *string `hcl:"locales_dir,optional"`
}

// Load reads an HCL file on top of the defaults.
func Load(path string) (Config, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse reads HCL source on top of the defaults. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (Config, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	cfg := Default()
	if g := parsed.Game; g != nil {
		setIfPresent(&cfg.Rows, g.Rows)
		setIfPresent(&cfg.Cols, g.Cols)
		setIfPresent(&cfg.Mines, g.Mines)
		setIfPresent(&cfg.Seed, g.Seed)
	}
	if d := parsed.Display; d != nil {
		setIfPresent(&cfg.Color, d.Color)
		setIfPresent(&cfg.Locale, d.Locale)
		setIfPresent(&cfg.LocalesDir, d.LocalesDir)
	}
	return cfg, nil
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Environment variables read by FromEnv.
const (
	EnvRows  = "MINES_ROWS"
	EnvCols  = "MINES_COLS"
	EnvMines = "MINES_MINES"
	EnvSeed  = "MINES_SEED"
)

// FromEnv overrides cfg with any MINES_* variables that are set.
func FromEnv(cfg Config) (Config, error) {
	for name, dst := range map[string]*int{EnvRows: &cfg.Rows, EnvCols: &cfg.Cols, EnvMines: &cfg.Mines} {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
	}
	if value := os.Getenv(EnvSeed); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
