package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"glowsnake/internal/config"
	"glowsnake/internal/snake"
)

const startKey = ebiten.KeySpace

// directionKeys is checked in order. When several are pressed in one tick
// the last one that does not reverse the current heading wins.
var directionKeys = []struct {
	key ebiten.Key
	dir snake.Direction
}{
	{ebiten.KeyArrowUp, snake.Up},
	{ebiten.KeyArrowDown, snake.Down},
	{ebiten.KeyArrowLeft, snake.Left},
	{ebiten.KeyArrowRight, snake.Right},
}

// Game adapts a snake.World to ebiten. Every Update is one tick, and Draw
// only repaints after a tick so frames and ticks stay one to one.
type Game struct {
	cfg      config.Config
	world    *snake.World
	renderer *renderer
	sounds   *sounds

	justPressed func(ebiten.Key) bool
	closing     func() bool

	ticks int
	drawn int
}

// NewGame builds the loop context. snd may be nil to run without audio.
func NewGame(cfg config.Config, snd *sounds) (*Game, error) {
	world, err := snake.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}
	return &Game{
		cfg:         cfg,
		world:       world,
		renderer:    r,
		sounds:      snd,
		justPressed: inpututil.IsKeyJustPressed,
		closing:     ebiten.IsWindowBeingClosed,
	}, nil
}

func (g *Game) readInput() snake.Input {
	in := snake.Input{Start: g.justPressed(startKey)}
	for _, b := range directionKeys {
		if g.justPressed(b.key) {
			in.Turns = append(in.Turns, b.dir)
		}
	}
	return in
}

func (g *Game) Update() error {
	if g.closing() {
		return ebiten.Termination
	}
	g.sounds.play(g.world.Step(g.readInput()))
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.drawn == g.ticks {
		return
	}
	g.drawn = g.ticks
	g.renderer.draw(screen, g.world.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// Score is the score at the time of the call.
func (g *Game) Score() int {
	return g.world.Score()
}
