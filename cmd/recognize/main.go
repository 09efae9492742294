// Command recognize runs the rigid-model recognition pipeline over a batch
// of matches loaded from a JSON file, and can dump the intermediate
// consistency graph to Graphviz for inspection.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
