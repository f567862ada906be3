package geom

import "fmt"

// Point is a grid position. It is comparable and can be used as a map key.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Translate(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) Add(m Move) Point {
	return p.Translate(m.DX, m.DY)
}

// Sub returns the displacement leading from q to p.
func (p Point) Sub(q Point) Move {
	return Move{p.X - q.X, p.Y - q.Y}
}

// Chebyshev is the king-move distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// Touches reports whether q is adjacent to p orthogonally, diagonally or overlapping.
func (p Point) Touches(q Point) bool {
	return p.Chebyshev(q) <= 1
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
