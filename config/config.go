// Package config loads the tunables of a maze world from YAML.
//
// A config file looks like:
//
//	tile_size: 1
//	maze:
//	  width: 10    # UI-level size; the lattice is 2*width-1 cells wide
//	  length: 10
//	seed: 42       # 0 picks a time-based seed
//	pathfinder:
//	  bounds_mode: either   # or "strict"
//	  max_expansions: 0     # 0 = unlimited
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/grid"
)

// ErrBadConfig wraps every validation and decoding failure.
var ErrBadConfig = errors.New("config: invalid configuration")

// Maze size limits, matching the range exposed to players.
const (
	MinMazeSize = 3
	MaxMazeSize = 20
)

// Config is the full set of tunables.
type Config struct {
	TileSize   float64    `yaml:"tile_size"`
	Maze       Maze       `yaml:"maze"`
	Seed       int64      `yaml:"seed"`
	Pathfinder Pathfinder `yaml:"pathfinder"`
}

// Maze holds the UI-level maze size.
type Maze struct {
	Width  int `yaml:"width"`
	Length int `yaml:"length"`
}

// Pathfinder holds search settings.
type Pathfinder struct {
	BoundsMode    string `yaml:"bounds_mode"`
	MaxExpansions int    `yaml:"max_expansions"`
}

// Default returns tile size 1, a 10×10 maze, a time-based seed, "either"
// bounds and no expansion cap.
func Default() Config {
	return Config{
		TileSize:   grid.DefaultTileSize,
		Maze:       Maze{Width: 10, Length: 10},
		Pathfinder: Pathfinder{BoundsMode: astar.BoundsEither.String()},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data on top of Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and returns the first violation wrapped in
// ErrBadConfig.
func (c Config) Validate() error {
	if err := grid.ValidateTileSize(c.TileSize); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := ValidateMazeSize(c.Maze.Width, c.Maze.Length); err != nil {
		return err
	}
	if _, err := astar.ParseBoundsMode(c.Pathfinder.BoundsMode); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if c.Pathfinder.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative (%d)", ErrBadConfig, c.Pathfinder.MaxExpansions)
	}

	return nil
}

// ValidateMazeSize checks a UI-level maze size against the allowed range.
func ValidateMazeSize(width, length int) error {
	if width < MinMazeSize || width > MaxMazeSize || length < MinMazeSize || length > MaxMazeSize {
		return fmt.Errorf("%w: maze size %dx%d outside [%d,%d]",
			ErrBadConfig, width, length, MinMazeSize, MaxMazeSize)
	}
	return nil
}

// BoundsMode returns the parsed pathfinder bounds mode. Call on a validated
// Config; an unknown mode falls back to BoundsEither.
func (c Config) BoundsMode() astar.BoundsMode {
	m, err := astar.ParseBoundsMode(c.Pathfinder.BoundsMode)
	if err != nil {
		return astar.BoundsEither
	}
	return m
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
