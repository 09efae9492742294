package graphbuilder

import (
	"math"

	"github.com/lovelyyoshino/bron-kerbosch/core"
)

// consistencyDistance returns the model-frame distance and the consistency
// distance (the absolute difference between the model-frame and
// scene-frame inter-centroid distances) between two centroid pairs.
func consistencyDistance(a, b core.PointPair) (consistency, model float64) {
	model = a.Model.Distance(b.Model)
	scene := a.Scene.Distance(b.Scene)
	return math.Abs(model - scene), model
}

// isConsistent reports whether matches a and b are geometrically consistent
// under threshold tau: their model ids differ, their scene ids differ, and
// their consistency distance is at most tau.
func isConsistent(a, b core.PairwiseMatch, tau float64) bool {
	if a.Ids.ID1 == b.Ids.ID1 || a.Ids.ID2 == b.Ids.ID2 {
		return false
	}
	dist, _ := consistencyDistance(a.Centroids, b.Centroids)
	return dist <= tau
}

// drift returns the larger of the model-centroid and scene-centroid
// displacement between two observations of the same match, the measure
// used to decide whether a cached slot's data is still trustworthy.
func drift(a, b core.PointPair) float64 {
	dm := a.Model.Distance(b.Model)
	ds := a.Scene.Distance(b.Scene)
	if dm > ds {
		return dm
	}
	return ds
}
