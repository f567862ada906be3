package rope

import "ropesim/internal/geom"

// MoveHeadAndTail moves a two-point rope by a single unit step.
func MoveHeadAndTail(head, tail geom.Point, unit geom.Move) (geom.Point, geom.Point) {
	head = head.Add(unit)
	if mv, ok := Follow(head, tail); ok {
		tail = tail.Add(mv)
	}
	return head, tail
}

// CountHeadTail is the two-point special case of CountTailPositions.
func CountHeadTail(moves []geom.Move) int {
	var head, tail geom.Point
	seen := map[geom.Point]struct{}{tail: {}}
	for _, m := range moves {
		for unit := range m.Steps() {
			head, tail = MoveHeadAndTail(head, tail, unit)
			seen[tail] = struct{}{}
		}
	}
	return len(seen)
}
