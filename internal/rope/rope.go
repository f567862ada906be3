package rope

import (
	"fmt"

	"ropesim/internal/geom"
)

// Rope is an ordered chain of segments. Index 0 is the head, the last index the tail.
type Rope []geom.Point

// New creates a rope of length segments all sitting on origin.
func New(length int, origin geom.Point) (Rope, error) {
	if err := CheckLength(length); err != nil {
		return nil, err
	}
	r := make(Rope, length)
	for i := range r {
		r[i] = origin
	}
	return r, nil
}

// CheckLength returns a *ConfigurationError unless length is at least one.
func CheckLength(length int) error {
	if length < 1 {
		return &ConfigurationError{
			Param:  "rope length",
			Value:  length,
			Reason: "need at least one segment",
			Err:    ErrInvalidLength,
		}
	}
	return nil
}

func (r Rope) Head() geom.Point { return r[0] }

func (r Rope) Tail() geom.Point { return r[len(r)-1] }

func (r Rope) Clone() Rope {
	return append(Rope(nil), r...)
}

// Step moves the head by one unit step and lets every following segment
// catch up, in order from head to tail. Once a segment does not need to
// move, the segments behind it still touch their unmoved predecessors and
// are left alone.
//
// Step panics if unit is not a unit move; longer moves must be decomposed
// with geom.Move.Steps first.
func (r Rope) Step(unit geom.Move) {
	if !unit.IsUnit() {
		panic(fmt.Sprintf("rope: step %v is not a unit move", unit))
	}
	r[0] = r[0].Add(unit)
	for i := 1; i < len(r); i++ {
		mv, ok := Follow(r[i-1], r[i])
		if !ok {
			break
		}
		r[i] = r[i].Add(mv)
	}
}

// Taut reports whether every pair of neighbouring segments touches.
func (r Rope) Taut() bool {
	for i := 1; i < len(r); i++ {
		if !r[i-1].Touches(r[i]) {
			return false
		}
	}
	return true
}
