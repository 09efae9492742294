// Package core defines the fundamental data model shared by every stage of
// rigid-model recognition: identifiers, 3D points, pairwise matches, tunable
// parameters, and the dense, integer-indexed consistency graph that the
// maximum-clique engine and the incremental graph builder operate on.
//
// Nothing in this package knows about geometry beyond a Euclidean distance,
// and nothing in it knows about caching or clique search — it is the shared
// vocabulary the other packages build on, in the spirit of the graph
// primitives a generic graph library exposes to its algorithm packages.
package core
