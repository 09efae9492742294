package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lovelyyoshino/bron-kerbosch/config"
	"github.com/lovelyyoshino/bron-kerbosch/graphbuilder"
)

// NewDotCmd dumps the consistency graph for a match batch to Graphviz. It is
// pure I/O over the same builder Recognizer uses internally, useful for
// inspecting why two matches did or didn't end up in the same cluster.
func NewDotCmd() *cobra.Command {
	var configPath, matchesPath, outPath string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Dump the consistency graph of a match batch as Graphviz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd, configPath, matchesPath, outPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with resolution/min_cluster_size/max_model_radius (required)")
	cmd.Flags().StringVar(&matchesPath, "matches", "", "JSON file with the match batch (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("matches")

	return cmd
}

func runDot(cmd *cobra.Command, configPath, matchesPath, outPath string) error {
	params, err := config.Load(configPath)
	if err != nil {
		return err
	}

	matches, err := loadMatches(matchesPath)
	if err != nil {
		return err
	}

	graph := graphbuilder.NewBuilder(params).Build(matches)

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating dot output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return writeDot(out, graph)
}

func writeDot(w io.Writer, graph interface {
	N() int
	HasEdge(u, v int) bool
}) error {
	if _, err := fmt.Fprintln(w, "graph consistency {"); err != nil {
		return err
	}
	n := graph.N()
	for v := 0; v < n; v++ {
		if _, err := fmt.Fprintf(w, "  %d;\n", v); err != nil {
			return err
		}
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if graph.HasEdge(u, v) {
				if _, err := fmt.Fprintf(w, "  %d -- %d;\n", u, v); err != nil {
					return err
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
