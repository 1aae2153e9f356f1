package crossing

import "math/rand"

// Enemy lanes. Enemies travel along the three stone rows and respawn
// snapped to one of the five board columns, so a respawned bug can
// reappear mid-board rather than at the left edge.
var (
	laneXs = []float64{0, 101, 202, 303, 404}
	laneYs = []float64{63, 146, 229}
)

// pickLane returns a uniformly random spawn position from the fixed
// 5x3 lane grid. Pure apart from the injected random source.
func pickLane(rng *rand.Rand) (x, y float64) {
	return laneXs[rng.Intn(len(laneXs))], laneYs[rng.Intn(len(laneYs))]
}
