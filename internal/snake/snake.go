package snake

// neckLength is how many cells behind the new head are never treated as a
// collision. Only body[neckLength:] is checked.
const neckLength = 3

// Snake is a body of grid cells, head first, moving on a toroidal grid.
type Snake struct {
	body    []Point
	dir     Direction
	length  int
	initial int
	gridW   int
	gridH   int
}

func NewSnake(gridW, gridH, initialLength int) *Snake {
	s := &Snake{gridW: gridW, gridH: gridH, initial: initialLength}
	s.Reset()
	return s
}

// Reset lays the snake out horizontally at the centre of the grid, heading
// right, with its initial length.
func (s *Snake) Reset() {
	midX, midY := s.gridW/2, s.gridH/2
	s.body = make([]Point, 0, s.initial)
	for i := 0; i < s.initial; i++ {
		s.body = append(s.body, Point{mod(midX-i, s.gridW), midY})
	}
	s.dir = Right
	s.length = s.initial
}

func (s *Snake) Head() Point {
	return s.body[0]
}

// Advance moves the head one cell along the current direction. It reports
// false, leaving the snake untouched, when the new head lands on the body
// beyond the neck.
func (s *Snake) Advance() bool {
	next := s.Head().Step(s.dir, s.gridW, s.gridH)
	if len(s.body) > neckLength {
		for _, p := range s.body[neckLength:] {
			if p == next {
				return false
			}
		}
	}

	s.body = append([]Point{next}, s.body...)
	if len(s.body) > s.length {
		s.body = s.body[:s.length]
	}
	return true
}

// SetDirection turns the snake unless d points straight back. It reports
// whether the turn was accepted.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

func (s *Snake) Direction() Direction { return s.dir }

// Grow raises the target length by one; the body catches up on later advances.
func (s *Snake) Grow() { s.length++ }

func (s *Snake) TargetLength() int { return s.length }

func (s *Snake) Len() int { return len(s.body) }

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}
