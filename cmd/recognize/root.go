package main

import "github.com/spf13/cobra"

// NewRootCmd assembles the recognize CLI: the recognize subcommand runs one
// recognition call over a match batch, and dot dumps the intermediate
// consistency graph for a batch to Graphviz.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "recognize",
		Short:         "Rigid 3D model recognition over pairwise correspondences",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(NewRecognizeCmd(), NewDotCmd())
	return root
}
