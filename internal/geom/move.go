package geom

import (
	"fmt"
	"iter"
	"strconv"
)

// Move is a relative displacement on the grid.
type Move struct {
	DX, DY int
}

func NewMove(dx, dy int) Move {
	return Move{DX: dx, DY: dy}
}

// MoveFrom scales the unit displacement of d by distance.
func MoveFrom(d Direction, distance int) Move {
	u := d.Delta()
	return Move{DX: u.DX * distance, DY: u.DY * distance}
}

// ParseDistance parses a base-10 non-negative step count.
func ParseDistance(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ParseError{Token: s, Reason: "invalid distance"}
	}
	return int(n), nil
}

// IsUnit reports whether m moves at most one cell on each axis and is not zero.
func (m Move) IsUnit() bool {
	return m != Move{} && m.DX >= -1 && m.DX <= 1 && m.DY >= -1 && m.DY <= 1
}

// Steps yields unit moves summing to m. All horizontal steps come before
// any vertical ones, so a diagonal m walks along x first.
func (m Move) Steps() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for dx := m.DX; dx != 0; dx -= Sgn(dx) {
			if !yield(Move{Sgn(dx), 0}) {
				return
			}
		}
		for dy := m.DY; dy != 0; dy -= Sgn(dy) {
			if !yield(Move{0, Sgn(dy)}) {
				return
			}
		}
	}
}

// StepCount is the number of unit moves Steps yields for m.
func (m Move) StepCount() int {
	return abs(m.DX) + abs(m.DY)
}

// Split collects Steps into a slice.
func (m Move) Split() []Move {
	steps := make([]Move, 0, m.StepCount())
	for s := range m.Steps() {
		steps = append(steps, s)
	}
	return steps
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.DX, m.DY)
}

// Sgn returns -1, 0 or 1 matching the sign of v.
func Sgn(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
