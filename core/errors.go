package core

import "errors"

// Sentinel errors for the core data model. Callers should branch on these
// with errors.Is rather than string comparison.
var (
	// ErrInvalidResolution indicates a non-positive Params.Resolution.
	ErrInvalidResolution = errors.New("core: resolution must be > 0")

	// ErrMinClusterSizeTooSmall indicates Params.MinClusterSize below 2,
	// the smallest size a clique (an edge) can have.
	ErrMinClusterSizeTooSmall = errors.New("core: min_cluster_size must be >= 2")

	// ErrInvalidMaxModelRadius indicates a negative MaxModelRadius; zero is
	// permitted and means "no early-reject bound".
	ErrInvalidMaxModelRadius = errors.New("core: max_model_radius must be >= 0")

	// ErrVertexOutOfRange indicates a vertex index outside [0, N) was
	// presented to a ConsistencyGraph accessor. This is a contract
	// violation: callers own the index space [0, N) by construction.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)
