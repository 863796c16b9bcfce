package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestRelocateStaysOnGrid(t *testing.T) {
	f := NewFood(testGridW, testGridH, rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		f.Relocate(nil)
		p := f.Position()
		assert.True(t, p.X >= 0 && p.X < testGridW, "x out of range: %v", p)
		assert.True(t, p.Y >= 0 && p.Y < testGridH, "y out of range: %v", p)
		assert.Contains(t, FoodPalette, f.Color())
	}
}

func TestRelocateCoversGrid(t *testing.T) {
	f := NewFood(3, 2, rand.New(rand.NewSource(11)))
	seen := map[Point]bool{}

	for i := 0; i < 500; i++ {
		f.Relocate(nil)
		seen[f.Position()] = true
	}
	assert.Len(t, seen, 6)
}

func TestRelocateAvoidsBody(t *testing.T) {
	f := NewFood(2, 2, rand.New(rand.NewSource(3)))
	f.AvoidBody = true
	body := []Point{{0, 0}, {1, 0}, {1, 1}}

	for i := 0; i < 50; i++ {
		f.Relocate(body)
		assert.Equal(t, Point{0, 1}, f.Position())
	}
}

func TestRelocateFullBoardFallsBack(t *testing.T) {
	f := NewFood(2, 2, rand.New(rand.NewSource(3)))
	f.AvoidBody = true

	f.Relocate([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	p := f.Position()
	assert.True(t, p.X >= 0 && p.X < 2 && p.Y >= 0 && p.Y < 2)
}

func TestRelocationsCounts(t *testing.T) {
	f := NewFood(4, 4, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, f.Relocations())

	f.Relocate(nil)
	f.Relocate(nil)
	assert.Equal(t, 3, f.Relocations())
}
