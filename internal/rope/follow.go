package rope

import "ropesim/internal/geom"

// Follow returns the single step a follower takes toward its leader, or
// false when the two already touch. Each axis closes by one cell
// independently, giving a diagonal step when both axes differ. One step is
// enough to reconnect as long as the leader moved by at most one cell.
func Follow(leader, follower geom.Point) (geom.Move, bool) {
	if follower.Touches(leader) {
		return geom.Move{}, false
	}
	return geom.NewMove(geom.Sgn(leader.X-follower.X), geom.Sgn(leader.Y-follower.Y)), true
}
