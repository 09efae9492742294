package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lovelyyoshino/bron-kerbosch/core"
)

// matchRecord is the JSON-on-disk shape of one PairwiseMatch. Features are
// intentionally not represented here: the CLI never needs to round-trip the
// opaque per-match payload the recognition core ignores.
type matchRecord struct {
	ModelID    int64   `json:"model_id"`
	SceneID    int64   `json:"scene_id"`
	Confidence float64 `json:"confidence"`
	Model      [3]float64 `json:"model"`
	Scene      [3]float64 `json:"scene"`
}

// loadMatches reads a JSON array of matchRecord from path.
func loadMatches(path string) ([]core.PairwiseMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matches file: %w", err)
	}

	var records []matchRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing matches JSON: %w", err)
	}

	matches := make([]core.PairwiseMatch, len(records))
	for i, r := range records {
		matches[i] = core.PairwiseMatch{
			Ids:        core.IdPair{ID1: core.Identifier(r.ModelID), ID2: core.Identifier(r.SceneID)},
			Confidence: r.Confidence,
			Centroids: core.PointPair{
				Model: core.Point{X: r.Model[0], Y: r.Model[1], Z: r.Model[2]},
				Scene: core.Point{X: r.Scene[0], Y: r.Scene[1], Z: r.Scene[2]},
			},
		}
	}
	return matches, nil
}
