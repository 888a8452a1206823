package core

import "fmt"

// Point is a grid cell address
type Point struct {
	Row, Col int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
