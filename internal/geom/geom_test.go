package geom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSgn(t *testing.T) {
	assert.Equal(t, -1, Sgn(-123_456))
	assert.Equal(t, -1, Sgn(-1))
	assert.Equal(t, 0, Sgn(0))
	assert.Equal(t, 1, Sgn(1))
	assert.Equal(t, 1, Sgn(9_999_999))
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		dx   int
		dy   int
	}{
		{"U", Up, 0, 1},
		{"D", Down, 0, -1},
		{"L", Left, -1, 0},
		{"R", Right, 1, 0},
	}
	for _, tt := range tests {
		d, err := ParseDirection(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d)
		assert.Equal(t, Move{tt.dx, tt.dy}, d.Delta())
		assert.Equal(t, tt.in, d.String())
	}
}

func TestParseDirectionRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "X", "u", "UP", "1"} {
		_, err := ParseDirection(in)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q", in)
		assert.Equal(t, in, perr.Token)
		assert.Contains(t, err.Error(), "unrecognized direction")
	}
}

func TestParseDistance(t *testing.T) {
	n, err := ParseDistance("75")
	require.NoError(t, err)
	assert.Equal(t, 75, n)

	n, err = ParseDistance("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, in := range []string{"", "-3", "+3", "x", "1.5", "0x10"} {
		_, err := ParseDistance(in)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q", in)
		assert.Equal(t, "invalid distance", perr.Reason)
	}
}

func TestMoveFrom(t *testing.T) {
	assert.Equal(t, Move{0, -7}, MoveFrom(Down, 7))
	assert.Equal(t, Move{0, 0}, MoveFrom(Right, 0))
	assert.Equal(t, Move{-5, 0}, MoveFrom(Left, 5))
	assert.Equal(t, Move{0, 99}, MoveFrom(Up, 99))
}

func TestSplit(t *testing.T) {
	assert.Empty(t, Move{0, 0}.Split())
	assert.Equal(t, []Move{{1, 0}}, Move{1, 0}.Split())
	assert.Equal(t, []Move{{0, -1}}, Move{0, -1}.Split())
	assert.Equal(t, []Move{{1, 0}, {1, 0}, {0, -1}}, Move{2, -1}.Split())
	assert.Equal(t, []Move{{1, 0}, {1, 0}, {0, 1}, {0, 1}, {0, 1}}, Move{2, 3}.Split())
	assert.Equal(t, []Move{{-1, 0}, {-1, 0}, {-1, 0}}, Move{-3, 0}.Split())
}

func TestStepsStopsEarly(t *testing.T) {
	n := 0
	for range (Move{5, 5}).Steps() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestIsUnit(t *testing.T) {
	assert.True(t, Move{1, 0}.IsUnit())
	assert.True(t, Move{0, -1}.IsUnit())
	assert.True(t, Move{1, 1}.IsUnit())
	assert.False(t, Move{0, 0}.IsUnit())
	assert.False(t, Move{2, 0}.IsUnit())
	assert.False(t, Move{0, -3}.IsUnit())
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, Pt(5, 3), Pt(0, 0).Translate(5, 3))
	assert.Equal(t, Pt(15, 47), Pt(17, 47).Translate(-2, 0))
	assert.Equal(t, Pt(0, 0), Pt(10, -3).Add(Move{-10, 3}))
	assert.Equal(t, Move{-10, 3}, Pt(0, 0).Sub(Pt(10, -3)))
}

func TestTouches(t *testing.T) {
	touching := [][2]Point{
		{Pt(5, 8), Pt(4, 8)},
		{Pt(5, 8), Pt(6, 8)},
		{Pt(5, 8), Pt(5, 7)},
		{Pt(5, 8), Pt(5, 9)},
		{Pt(-6, 0), Pt(-5, -1)},
		{Pt(-6, 0), Pt(-7, -1)},
		{Pt(-6, 0), Pt(-5, 1)},
		{Pt(-6, 0), Pt(-7, 1)},
		{Pt(17, 18), Pt(17, 18)},
	}
	for _, p := range touching {
		assert.True(t, p[0].Touches(p[1]), "%v %v", p[0], p[1])
		assert.True(t, p[1].Touches(p[0]), "%v %v", p[1], p[0])
	}

	apart := [][2]Point{
		{Pt(17, 18), Pt(17, 20)},
		{Pt(17, 18), Pt(15, 18)},
		{Pt(17, 18), Pt(-17, 18)},
		{Pt(0, 0), Pt(2, 1)},
	}
	for _, p := range apart {
		assert.False(t, p[0].Touches(p[1]), "%v %v", p[0], p[1])
	}
}

func TestPointAsMapKey(t *testing.T) {
	set := map[Point]struct{}{}
	for i := 0; i < 2; i++ {
		set[Pt(0, 0)] = struct{}{}
		set[Pt(1, 0)] = struct{}{}
		set[Pt(0, 1)] = struct{}{}
		set[Pt(1, 1)] = struct{}{}
	}
	assert.Len(t, set, 4)
}

func TestStepCount(t *testing.T) {
	assert.Equal(t, 0, Move{}.StepCount())
	assert.Equal(t, 3, Move{2, -1}.StepCount())
	assert.Equal(t, 5, Move{-2, 3}.StepCount())
	assert.Equal(t, 4294967295, MoveFrom(Right, 4294967295).StepCount())
	assert.Len(t, Move{2, 3}.Split(), Move{2, 3}.StepCount())
}
