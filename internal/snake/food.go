package snake

import (
	"image/color"

	"golang.org/x/exp/rand"
)

// Food is a single cell the snake can eat.
//
// By default Relocate picks any cell, including ones under the snake. Set
// AvoidBody to restrict it to free cells.
type Food struct {
	AvoidBody bool

	pos   Point
	color color.RGBA
	rng   *rand.Rand
	gridW int
	gridH int
	moves int
}

func NewFood(gridW, gridH int, rng *rand.Rand) *Food {
	f := &Food{gridW: gridW, gridH: gridH, rng: rng, color: red}
	f.Relocate(nil)
	return f
}

func (f *Food) Position() Point { return f.pos }

func (f *Food) Color() color.RGBA { return f.color }

// Relocate moves the food to a random cell and gives it a random colour.
// body is only consulted when AvoidBody is set.
func (f *Food) Relocate(body []Point) {
	f.pos = Point{f.rng.Intn(f.gridW), f.rng.Intn(f.gridH)}
	if f.AvoidBody {
		if free := f.freeCells(body); len(free) > 0 {
			f.pos = free[f.rng.Intn(len(free))]
		}
	}
	f.color = FoodPalette[f.rng.Intn(len(FoodPalette))]
	f.moves++
}

// Relocations is how many times Relocate has run, including the initial
// placement.
func (f *Food) Relocations() int { return f.moves }

func (f *Food) freeCells(body []Point) []Point {
	taken := make(map[Point]bool, len(body))
	for _, p := range body {
		taken[p] = true
	}
	free := make([]Point, 0, f.gridW*f.gridH-len(taken))
	for y := 0; y < f.gridH; y++ {
		for x := 0; x < f.gridW; x++ {
			if p := (Point{x, y}); !taken[p] {
				free = append(free, p)
			}
		}
	}
	return free
}
