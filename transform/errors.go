package transform

import "errors"

// Sentinel errors for EstimateRigid's caller-facing contract. Callers should
// branch on these with errors.Is rather than string comparison.
var (
	// ErrMismatchedLengths indicates src and dst have different lengths;
	// EstimateRigid requires one destination point per source point.
	ErrMismatchedLengths = errors.New("transform: src and dst must have equal length")

	// ErrTooFewPoints indicates fewer than one correspondence was given.
	ErrTooFewPoints = errors.New("transform: at least one correspondence is required")

	// ErrTooManyPoints indicates more than MaxCorrespondences correspondences
	// were given. Callers own capping the clique to MaxCorrespondences
	// before calling EstimateRigid; this package will not silently truncate.
	ErrTooManyPoints = errors.New("transform: too many correspondences, cap at MaxCorrespondences")
)
