package snake

import "image/color"

var (
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	purple = color.RGBA{128, 0, 128, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	cyan   = color.RGBA{0, 255, 255, 255}
)

// BodyPalette colours snake segments by index, cycling.
var BodyPalette = []color.RGBA{green, blue, cyan, purple, yellow}

// FoodPalette is the set food colours are drawn from on every relocation.
var FoodPalette = []color.RGBA{red, blue, purple, yellow, cyan}

// SegmentColor returns the colour of body segment i.
func SegmentColor(i int) color.RGBA {
	return BodyPalette[i%len(BodyPalette)]
}
