// Package bronkerbosch is a rigid 3D model recognition pipeline built on a
// maximum-clique consistency check.
//
// 🚀 What does it do?
//
//	Given a set of pairwise model-to-scene correspondences (matches), it
//	groups the matches that are mutually geometrically consistent into
//	clusters, and estimates a rigid transform (rotation + translation, no
//	scale) for each cluster:
//		• core:        shared geometric types, per-run parameters
//		• graphbuilder: incremental consistency-graph construction with caching
//		• maxclique:   degeneracy-ordered maximum-clique search
//		• transform:   Umeyama rigid-alignment estimation
//		• recognizer:  orchestration across the pieces above
//
// ✨ Design
//
//   - Deterministic — same matches in, same clusters and transforms out
//   - Incremental — repeated calls amortize consistency checks via caching
//   - Pure Go — no cgo
//
// Under the hood:
//
//	core/          — Point, PairwiseMatch, IdPair, Params, ConsistencyGraph
//	graphbuilder/  — Builder: matches -> *core.ConsistencyGraph
//	maxclique/     — FindMaxClique: graph -> largest mutually-consistent clique
//	transform/     — EstimateRigid: correspondences -> rotation + translation
//	recognizer/    — Recognizer: matches -> clusters + transforms
//	matrix/        — dense linear algebra backing the transform estimator
//	cmd/recognize/ — CLI front end
//
// Quick shape:
//
//	matches -> graphbuilder.Build -> maxclique.FindMaxClique -> transform.EstimateRigid
//
//	go get github.com/lovelyyoshino/bron-kerbosch
package bronkerbosch
