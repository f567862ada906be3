package rope

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"ropesim/internal/geom"
)

// Render draws the rope and the visited cells, top row first. The head is
// drawn as H, the tail as T, middle segments by index, the origin as s and
// visited cells as #.
func Render(w io.Writer, r Rope, visited *VisitedSet, origin geom.Point) error {
	minX, maxX, minY, maxY := origin.X, origin.X, origin.Y, origin.Y
	grow := func(p geom.Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, p := range r {
		grow(p)
	}
	if visited != nil {
		for _, p := range visited.Points() {
			grow(p)
		}
	}

	bw := bufio.NewWriter(w)
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			bw.WriteByte(cell(r, visited, origin, geom.Pt(x, y)))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

func cell(r Rope, visited *VisitedSet, origin, p geom.Point) byte {
	// lower indices win when segments overlap
	for i, seg := range r {
		if seg != p {
			continue
		}
		switch {
		case i == 0:
			return 'H'
		case i == len(r)-1:
			return 'T'
		case i < 10:
			return strconv.Itoa(i)[0]
		default:
			return '+'
		}
	}
	switch {
	case p == origin:
		return 's'
	case visited != nil && visited.Contains(p):
		return '#'
	}
	return '.'
}
