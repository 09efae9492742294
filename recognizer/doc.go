// Package recognizer orchestrates rigid 3D model recognition: it wires the
// incremental consistency-graph builder to the maximum-clique engine, turns
// the returned clique into a cluster of matches, and hands the cluster's
// centroids to the rigid-transform estimator.
//
// A Recognizer is not reentrant: Recognize mutates the cache owned by its
// GraphBuilder in place, mirroring the single-threaded, cooperative
// scheduling model of the pipeline it drives. Distinct Recognizer instances
// may run concurrently on disjoint state.
package recognizer
