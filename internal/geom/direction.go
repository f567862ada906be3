package geom

import "fmt"

// Direction is one of the four grid directions, encoded by its command letter.
type Direction byte

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// ParseDirection converts a single-letter code into a Direction.
func ParseDirection(s string) (Direction, error) {
	if len(s) != 1 {
		return 0, &ParseError{Token: s, Reason: "unrecognized direction"}
	}
	switch d := Direction(s[0]); d {
	case Up, Down, Left, Right:
		return d, nil
	}
	return 0, &ParseError{Token: s, Reason: "unrecognized direction"}
}

// Delta returns the unit displacement for d. Increasing y is up.
func (d Direction) Delta() Move {
	switch d {
	case Up:
		return Move{0, 1}
	case Down:
		return Move{0, -1}
	case Left:
		return Move{-1, 0}
	case Right:
		return Move{1, 0}
	}
	return Move{}
}

func (d Direction) String() string {
	switch d {
	case Up, Down, Left, Right:
		return string(rune(d))
	}
	return fmt.Sprintf("Direction(%d)", byte(d))
}
