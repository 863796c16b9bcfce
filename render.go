package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"glowsnake/internal/config"
	"glowsnake/internal/snake"
)

var (
	white    = color.RGBA{255, 255, 255, 255}
	yellow   = color.RGBA{255, 255, 0, 255}
	orange   = color.RGBA{255, 165, 0, 255}
	darkGray = color.RGBA{40, 40, 40, 255}
)

const (
	welcomeW = 400
	welcomeH = 200
	boxGlow  = 10
)

type renderer struct {
	cfg config.Config

	credit  text.Face
	title   text.Face
	prompt  text.Face
	hud     text.Face
	bg      *ebiten.Image
	whitePx *ebiten.Image
}

func newRenderer(cfg config.Config) (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &renderer{
		cfg:    cfg,
		credit: pointFace(src, 72),
		title:  pointFace(src, 48),
		prompt: pointFace(src, 36),
		hud:    pointFace(src, 36),
	}, nil
}

// pointFace sizes a face in points; one point is 0.75 pixels.
func pointFace(src *text.GoTextFaceSource, pt float64) text.Face {
	return &text.GoTextFace{Source: src, Size: pt * 0.75}
}

// draw paints one full frame. Later layers cover earlier ones.
func (r *renderer) draw(screen *ebiten.Image, snap snake.Snapshot) {
	r.drawBackground(screen)
	r.drawGrid(screen)
	w, h := float64(r.cfg.WindowWidth), float64(r.cfg.WindowHeight)
	drawGlowText(screen, r.cfg.Credit, r.credit, w/2, h-100, yellow, orange, 2)

	if snap.Phase == snake.NotStarted {
		r.drawWelcome(screen)
		return
	}

	for i, p := range snap.Body {
		r.drawCell(screen, p, snake.SegmentColor(i))
	}
	r.drawCell(screen, snap.Food, snap.FoodColor)
	r.drawHUD(screen, snap)
}

func (r *renderer) drawBackground(screen *ebiten.Image) {
	if r.bg == nil {
		r.bg = ebiten.NewImageFromImage(gradient(r.cfg.WindowWidth, r.cfg.WindowHeight))
	}
	screen.DrawImage(r.bg, nil)
}

func (r *renderer) drawGrid(screen *ebiten.Image) {
	w, h, cs := float32(r.cfg.WindowWidth), float32(r.cfg.WindowHeight), r.cfg.CellSize
	for x := 0; x < r.cfg.WindowWidth; x += cs {
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 1, darkGray, false)
	}
	for y := 0; y < r.cfg.WindowHeight; y += cs {
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 1, darkGray, false)
	}
}

// drawCell fills one grid cell, leaving a one pixel seam on the right and
// bottom so neighbouring segments stay distinguishable.
func (r *renderer) drawCell(screen *ebiten.Image, p snake.Point, clr color.Color) {
	cs := float32(r.cfg.CellSize)
	vector.DrawFilledRect(screen, float32(p.X)*cs, float32(p.Y)*cs, cs-1, cs-1, clr, false)
}

func (r *renderer) drawHUD(screen *ebiten.Image, snap snake.Snapshot) {
	drawLeft(screen, fmt.Sprintf("Score: %d", snap.Score), r.hud, 10, 10, white)
	drawLeft(screen, fmt.Sprintf("High Score: %d", snap.HighScore), r.hud, 10, 50, yellow)
}

func drawLeft(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func (r *renderer) drawWelcome(screen *ebiten.Image) {
	if r.whitePx == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.whitePx = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	x := float32(r.cfg.WindowWidth-welcomeW) / 2
	y := float32(r.cfg.WindowHeight-welcomeH) / 2

	for i := boxGlow; i > 0; i-- {
		f := float32(i)
		halo := roundedRect(x-f, y-f, welcomeW+2*f, welcomeH+2*f, 20)
		fillPath(screen, r.whitePx, halo, color.NRGBA{orange.R, orange.G, orange.B, haloAlpha(i)})
	}
	box := roundedRect(x, y, welcomeW, welcomeH, 15)
	fillPath(screen, r.whitePx, box, color.NRGBA{darkGray.R, darkGray.G, darkGray.B, 255})
	strokePath(screen, r.whitePx, box, 2, color.NRGBA{orange.R, orange.G, orange.B, 255})

	cx := float64(r.cfg.WindowWidth) / 2
	drawGlowText(screen, "Welcome to Snake Game!", r.title, cx, float64(y)+50, white, orange, 2)
	drawGlowText(screen, "Press SPACE to Start", r.prompt, cx, float64(y)+120, white, orange, 2)
}

// haloAlpha is the opacity of halo ring i, counted outward from the box.
func haloAlpha(i int) uint8 {
	return uint8(255 * i / boxGlow)
}
