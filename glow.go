package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gradient builds a vertical grey ramp from black at the top to
// (50,50,50) at the bottom.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := uint8(y * 50 / h)
		c := color.RGBA{v, v, v, 255}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// glowOffsets lists the positions a glow copy is stamped at, outermost ring
// first.
func glowOffsets(radius int) []image.Point {
	var out []image.Point
	for r := radius; r > 0; r-- {
		out = append(out,
			image.Pt(0, r), image.Pt(0, -r),
			image.Pt(r, 0), image.Pt(-r, 0))
	}
	return out
}

// drawGlowText draws s centred on x with a halo in glow behind it.
func drawGlowText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr, glow color.Color, radius int) {
	for _, off := range glowOffsets(radius) {
		drawText(dst, s, face, x+float64(off.X), y+float64(off.Y), glow)
	}
	drawText(dst, s, face, x, y, clr)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// roundedRect returns a closed path for a rectangle with corners of radius r.
func roundedRect(x, y, w, h, r float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

// fillPath fills p with a flat colour using src as a one pixel white texture.
func fillPath(dst, src *ebiten.Image, p *vector.Path, clr color.NRGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	paint(vs, clr)
	dst.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

func strokePath(dst, src *ebiten.Image, p *vector.Path, width float32, clr color.NRGBA) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	paint(vs, clr)
	dst.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleFillAll,
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, clr color.NRGBA) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
}
