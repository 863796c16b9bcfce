package snake

type Point struct{ X, Y int }

// Direction is a unit step on the grid.
type Direction struct{ X, Y int }

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

func (d Direction) Opposite() Direction {
	return Direction{-d.X, -d.Y}
}

// Step moves p one cell along d, wrapping around a w x h torus.
func (p Point) Step(d Direction, w, h int) Point {
	return Point{mod(p.X+d.X, w), mod(p.Y+d.Y, h)}
}

func mod(a, n int) int {
	return (a%n + n) % n
}
