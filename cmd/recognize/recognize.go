package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lovelyyoshino/bron-kerbosch/config"
	"github.com/lovelyyoshino/bron-kerbosch/core"
	"github.com/lovelyyoshino/bron-kerbosch/recognizer"
	"github.com/lovelyyoshino/bron-kerbosch/transform"
)

// NewRecognizeCmd runs one recognition call over a match batch and prints
// the resulting cluster and transform, if any.
func NewRecognizeCmd() *cobra.Command {
	var configPath, matchesPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recognize",
		Short: "Run one recognition call over a JSON match batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecognize(cmd, configPath, matchesPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with resolution/min_cluster_size/max_model_radius (required)")
	cmd.Flags().StringVar(&matchesPath, "matches", "", "JSON file with the match batch (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON instead of text")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("matches")

	return cmd
}

func runRecognize(cmd *cobra.Command, configPath, matchesPath string, asJSON bool) error {
	params, err := config.Load(configPath)
	if err != nil {
		return err
	}

	matches, err := loadMatches(matchesPath)
	if err != nil {
		return err
	}

	r, err := recognizer.New(params)
	if err != nil {
		return fmt.Errorf("constructing recognizer: %w", err)
	}

	if err := r.Recognize(matches); err != nil {
		return fmt.Errorf("recognize: %w", err)
	}

	clusters := r.CandidateClusters()
	transforms := r.CandidateTransforms()

	if asJSON {
		return printResultJSON(cmd.OutOrStdout(), clusters, transforms)
	}
	printResultText(cmd.OutOrStdout(), clusters, transforms)
	return nil
}

type resultRecord struct {
	ClusterSize int             `json:"cluster_size"`
	IDs         []core.IdPair   `json:"ids"`
	Transform   transform.Matrix4x4 `json:"transform"`
}

func printResultJSON(w io.Writer, clusters [][]core.PairwiseMatch, transforms []transform.Matrix4x4) error {
	records := make([]resultRecord, len(clusters))
	for i, cluster := range clusters {
		ids := make([]core.IdPair, len(cluster))
		for j, m := range cluster {
			ids[j] = m.Ids
		}
		records[i] = resultRecord{ClusterSize: len(cluster), IDs: ids, Transform: transforms[i]}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printResultText(w io.Writer, clusters [][]core.PairwiseMatch, transforms []transform.Matrix4x4) {
	if len(clusters) == 0 {
		fmt.Fprintln(w, "no candidate cluster found")
		return
	}
	for i, cluster := range clusters {
		fmt.Fprintf(w, "cluster %d: %d correspondences\n", i, len(cluster))
		for _, m := range cluster {
			fmt.Fprintf(w, "  model=%d scene=%d\n", m.Ids.ID1, m.Ids.ID2)
		}
		fmt.Fprintf(w, "  transform: %v\n", transforms[i])
	}
}
