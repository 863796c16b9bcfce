package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	minTickRate = 1
	maxTickRate = 240
)

// Config holds every tunable of the game. The zero value is not usable;
// start from Default.
type Config struct {
	WindowWidth    int    // window width in pixels
	WindowHeight   int    // window height in pixels
	CellSize       int    // side of one grid cell in pixels
	TickRate       int    // simulation ticks per second
	InitialLength  int    // snake length at start and after every reset
	Title          string // window title
	HighScore      int    // shown on the HUD, never updated at runtime
	Credit         string // decorative text drawn near the bottom edge
	Sound          bool   // play beeps on food and collisions
	Seed           int64  // RNG seed, 0 means seed from the clock
	FoodAvoidsBody bool   // relocate food only onto cells the snake does not cover
}

func Default() Config {
	return Config{
		WindowWidth:   800,
		WindowHeight:  600,
		CellSize:      20,
		TickRate:      10,
		InitialLength: 5,
		Title:         "Snake Game",
		HighScore:     99,
		Credit:        "Made BY KAZI",
		Sound:         true,
	}
}

// GridWidth is the number of columns in the playfield.
func (c Config) GridWidth() int {
	return c.WindowWidth / c.CellSize
}

// GridHeight is the number of rows in the playfield.
func (c Config) GridHeight() int {
	return c.WindowHeight / c.CellSize
}

func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	case c.WindowWidth%c.CellSize != 0 || c.WindowHeight%c.CellSize != 0:
		return fmt.Errorf("%w: window size %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, c.WindowWidth, c.WindowHeight, c.CellSize)
	case c.GridWidth() < 2 || c.GridHeight() < 2:
		return fmt.Errorf("%w: grid %dx%d is smaller than 2x2", ErrInvalidConfig, c.GridWidth(), c.GridHeight())
	case c.TickRate < minTickRate || c.TickRate > maxTickRate:
		return fmt.Errorf("%w: tick rate %d outside %d..%d", ErrInvalidConfig, c.TickRate, minTickRate, maxTickRate)
	case c.InitialLength < 1 || c.InitialLength > c.GridWidth():
		return fmt.Errorf("%w: initial length %d does not fit a %d column grid",
			ErrInvalidConfig, c.InitialLength, c.GridWidth())
	}
	return nil
}
