package snake

import (
	"fmt"
	"image/color"
	"time"

	"golang.org/x/exp/rand"

	"glowsnake/internal/config"
)

// Phase is the state of the game loop.
type Phase int

const (
	NotStarted Phase = iota
	Running
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Input is everything the player did since the previous tick.
type Input struct {
	Start bool
	Turns []Direction
}

// Events reports what happened during one tick.
type Events struct {
	Started  bool
	Collided bool
	Ate      bool
}

// Snapshot is a read-only copy of the world for drawing.
type Snapshot struct {
	Phase     Phase
	Tick      int
	Body      []Point
	Direction Direction
	Target    int
	Food      Point
	FoodColor color.RGBA
	Score     int
	HighScore int
}

// World owns the snake, the food and the score. It is driven one tick at a
// time by Step and is not safe for concurrent use.
type World struct {
	snake     *Snake
	food      *Food
	phase     Phase
	tick      int
	score     int
	highScore int
}

func NewWorld(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	gw, gh := cfg.GridWidth(), cfg.GridHeight()
	food := NewFood(gw, gh, rng)
	food.AvoidBody = cfg.FoodAvoidsBody
	return &World{
		snake:     NewSnake(gw, gh, cfg.InitialLength),
		food:      food,
		highScore: cfg.HighScore,
	}, nil
}

// Step runs one tick. Before the start input arrives nothing moves. The tick
// that starts the game also advances it.
func (w *World) Step(in Input) Events {
	var ev Events
	if w.phase == NotStarted {
		if !in.Start {
			return ev
		}
		w.phase = Running
		ev.Started = true
	}
	w.tick++

	// Every turn is judged against the heading the snake last moved in; the
	// last acceptable one wins.
	heading := w.snake.Direction()
	for _, d := range in.Turns {
		if d != heading.Opposite() {
			w.snake.SetDirection(d)
		}
	}

	if !w.snake.Advance() {
		w.snake.Reset()
		w.food.Relocate(w.snake.body)
		w.score = 0
		ev.Collided = true
	}

	if w.snake.Head() == w.food.Position() {
		w.snake.Grow()
		w.score++
		w.food.Relocate(w.snake.body)
		ev.Ate = true
	}
	return ev
}

func (w *World) Score() int { return w.score }

func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Phase:     w.phase,
		Tick:      w.tick,
		Body:      w.snake.Body(),
		Direction: w.snake.Direction(),
		Target:    w.snake.TargetLength(),
		Food:      w.food.Position(),
		FoodColor: w.food.Color(),
		Score:     w.score,
		HighScore: w.highScore,
	}
}
