package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"glowsnake/internal/config"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var snd *sounds
	if cfg.Sound {
		snd = newSounds(audio.NewContext(sampleRate))
	}
	g, err := NewGame(cfg, snd)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("starting %dx%d grid at %d ticks/s", cfg.GridWidth(), cfg.GridHeight(), cfg.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("bye, final score %d", g.Score())
}
