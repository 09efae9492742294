package core

import "math"

// Identifier names one segment, either in the model or in the scene.
// Valid identifiers are assumed positive; the type itself does not enforce
// this (upstream segmentation owns identifier assignment).
type Identifier int64

// IdPair is an ordered pair of identifiers: (model segment, scene segment).
// Equality is over the ordered pair — IdPair{1,2} != IdPair{2,1} — which is
// exactly the semantics Go gives a comparable struct for free, so IdPair is
// used directly as a map key throughout this module. This sidesteps the
// classic "hash(a<<1 + b)" operator-precedence trap entirely: there is no
// hand-rolled mixing function to get wrong, and the map's collision handling
// is the language's, not this package's.
type IdPair struct {
	ID1 Identifier // model segment identifier
	ID2 Identifier // scene segment identifier
}

// Point is a 3D point in some fixed frame (model or scene).
type Point struct {
	X, Y, Z float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Norm returns the Euclidean length of p treated as a vector from the
// origin.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// PointPair is an ordered pair of centroids: (centroid in model frame,
// centroid in scene frame).
type PointPair struct {
	Model Point
	Scene Point
}

// FeatureMatrix is an opaque per-match payload (e.g. descriptor rows) that
// the recognition core never reads. It is carried through untouched so that
// callers can round-trip whatever upstream segment description they attach
// to a match.
type FeatureMatrix [][]float64

// PairwiseMatch is one hypothesized correspondence between a model segment
// and a scene segment.
//
// Invariant: Ids uniquely identifies this match within a single recognition
// call. Centroids may drift slightly between successive calls as upstream
// segmentation refines; see the graphbuilder package for how much drift is
// tolerated before a cached entry is invalidated.
type PairwiseMatch struct {
	Ids        IdPair
	Confidence float64
	Centroids  PointPair

	// Features is optional and unused by the recognition core; nil is the
	// common case.
	Features FeatureMatrix
}

// Params configures one Recognizer instance.
type Params struct {
	// Resolution is the strict pairwise-consistency threshold τ: two matches
	// are consistent only if their consistency distance is <= Resolution.
	Resolution float64

	// MinClusterSize is the smallest clique the recognizer will report; must
	// be >= 2 (a clique of size 1 is a single vertex, never a "cluster" of
	// mutually consistent matches).
	MinClusterSize int

	// MaxModelRadius bounds the model's spatial extent. It caps the
	// max-target-distance early-reject used by the incremental builder: a
	// pair whose model-frame distance exceeds this can never be consistent
	// under the bounding assumption. Zero disables the early-reject.
	MaxModelRadius float64
}

// Validate rejects parameter combinations that would make recognition
// meaningless, per §4.4 and §7 of the recognizer contract. This is the one
// caller-facing validation point for Params; once a Recognizer is
// constructed, the rest of the pipeline trusts the values it was given.
func (p Params) Validate() error {
	if p.Resolution <= 0 {
		return ErrInvalidResolution
	}
	if p.MinClusterSize < 2 {
		return ErrMinClusterSizeTooSmall
	}
	if p.MaxModelRadius < 0 {
		return ErrInvalidMaxModelRadius
	}
	return nil
}

// MaxTargetDistance returns the early-reject bound derived from
// MaxModelRadius: a pair's model-frame separation can be at most twice the
// model's bounding radius. A value of 0 means "no bound" (MaxModelRadius
// was left at its zero value).
func (p Params) MaxTargetDistance() float64 {
	if p.MaxModelRadius <= 0 {
		return 0
	}
	return 2 * p.MaxModelRadius
}
