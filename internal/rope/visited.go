package rope

import (
	"cmp"
	"slices"

	"ropesim/internal/geom"
)

// VisitedSet records the distinct positions taken by the tail. It only grows.
type VisitedSet struct {
	m map[geom.Point]struct{}
}

func NewVisitedSet(seed geom.Point) *VisitedSet {
	return &VisitedSet{m: map[geom.Point]struct{}{seed: {}}}
}

func (s *VisitedSet) Add(p geom.Point) {
	s.m[p] = struct{}{}
}

func (s *VisitedSet) Contains(p geom.Point) bool {
	_, ok := s.m[p]
	return ok
}

func (s *VisitedSet) Len() int {
	return len(s.m)
}

// Points returns the visited positions ordered by y, then x.
func (s *VisitedSet) Points() []geom.Point {
	pts := make([]geom.Point, 0, len(s.m))
	for p := range s.m {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, func(a, b geom.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return pts
}
