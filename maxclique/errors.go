package maxclique

import "errors"

// ErrMinSizeTooSmall indicates a minimum clique size below 2 was requested.
// A clique of size 1 is a single vertex, never the output of a search that
// is supposed to find mutual adjacency; this is a contract violation on the
// caller's part, not a runtime condition to recover from.
var ErrMinSizeTooSmall = errors.New("maxclique: min size must be >= 2")
