package core

// Direction is the heading of the snake head
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

// unitVectors indexed by Direction, one grid cell in (row, col)
var unitVectors = [...]Point{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

// Delta returns the one-cell unit vector of the direction
func (d Direction) Delta() Point {
	return unitVectors[d]
}

// Reverse returns the opposite heading
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsReverseOf reports whether d points against other
func (d Direction) IsReverseOf(other Direction) bool {
	return d.Reverse() == other
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}
