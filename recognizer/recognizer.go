package recognizer

import (
	"context"

	"github.com/lovelyyoshino/bron-kerbosch/core"
	"github.com/lovelyyoshino/bron-kerbosch/graphbuilder"
	"github.com/lovelyyoshino/bron-kerbosch/maxclique"
	"github.com/lovelyyoshino/bron-kerbosch/transform"
)

// Recognizer runs one rigid-model recognition pipeline: matches ->
// consistency graph -> maximum clique -> cluster -> rigid transform. It
// owns a ConsistencyGraphSource whose cache persists and is mutated in
// place across successive Recognize calls; a Recognizer is not safe for
// concurrent use.
type Recognizer struct {
	params  core.Params
	builder ConsistencyGraphSource
	logger  *Logger

	clusters   [][]core.PairwiseMatch
	transforms []transform.Matrix4x4
}

// New constructs a Recognizer from params, which must already satisfy
// core.Params.Validate. The cache starts empty.
func New(params core.Params, opts ...Option) (*Recognizer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cfg := config{
		logger:  NoopLogger(),
		builder: graphbuilder.NewBuilder(params),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Recognizer{
		params:  params,
		builder: cfg.builder,
		logger:  cfg.logger,
	}, nil
}

// Recognize runs one recognition step over predictedMatches (§4.3):
//
//  1. Clear previous candidate clusters and transforms.
//  2. If predictedMatches is empty, return with empty outputs.
//  3. Build the consistency graph via the graph source.
//  4. Search for a clique of at least params.MinClusterSize.
//  5. If none is found, return with empty outputs.
//  6. Materialize the clique as a cluster of matches.
//  7. Estimate the rigid transform from the cluster's centroids, capped at
//     transform.MaxCorrespondences correspondences.
//  8. Append the cluster and transform to the candidate outputs.
//
// A transform-estimation failure is an external-solver failure (§7): it is
// logged and returned to the caller unmodified, and neither the cluster nor
// a transform is appended, keeping CandidateClusters and
// CandidateTransforms index-aligned.
func (r *Recognizer) Recognize(predictedMatches []core.PairwiseMatch) error {
	return r.recognize(context.Background(), predictedMatches)
}

func (r *Recognizer) recognize(ctx context.Context, predictedMatches []core.PairwiseMatch) error {
	r.clusters = nil
	r.transforms = nil

	if len(predictedMatches) == 0 {
		r.logger.LogEmptyInput(ctx)
		return nil
	}

	graph := r.builder.Build(predictedMatches)
	r.logger.LogGraphBuilt(ctx, graph.N(), countEdges(graph))

	clique, err := maxclique.FindMaxClique(graph, r.params.MinClusterSize)
	if err != nil {
		// A contract violation here (min size < 2) can only mean New let
		// an invalid Params through; core.Params.Validate is supposed to
		// prevent that.
		panic("recognizer: maxclique rejected min_cluster_size accepted by Params.Validate: " + err.Error())
	}
	if len(clique) == 0 {
		r.logger.LogNoClique(ctx, r.params.MinClusterSize)
		return nil
	}

	cluster := make([]core.PairwiseMatch, len(clique))
	for i, v := range clique {
		cluster[i] = predictedMatches[v]
	}

	used := cluster
	if len(used) > transform.MaxCorrespondences {
		used = used[:transform.MaxCorrespondences]
	}
	src := make([]core.Point, len(used))
	dst := make([]core.Point, len(used))
	for i, m := range used {
		src[i] = m.Centroids.Model
		dst[i] = m.Centroids.Scene
	}

	t, err := transform.EstimateRigid(src, dst)
	if err != nil {
		r.logger.LogTransformFailed(ctx, len(cluster), err)
		return err
	}

	r.logger.LogClusterFound(ctx, len(cluster), len(used))
	r.clusters = append(r.clusters, cluster)
	r.transforms = append(r.transforms, t)
	return nil
}

// CandidateClusters returns the zero-or-one clusters found by the most
// recent Recognize call, index-aligned with CandidateTransforms.
func (r *Recognizer) CandidateClusters() [][]core.PairwiseMatch {
	return r.clusters
}

// CandidateTransforms returns the zero-or-one transforms found by the most
// recent Recognize call, index-aligned with CandidateClusters.
func (r *Recognizer) CandidateTransforms() []transform.Matrix4x4 {
	return r.transforms
}

func countEdges(g *core.ConsistencyGraph) int {
	total := 0
	for v := 0; v < g.N(); v++ {
		total += g.Degree(v)
	}
	return total / 2
}
