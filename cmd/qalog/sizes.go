package main

import (
	"fmt"

	"github.com/fwojciec/qalog"
)

// Run executes the sizes command.
func (c *SizesCmd) Run(deps *Dependencies) error {
	sizes, err := deps.Store.ArtifactSizes(deps.Ctx)
	if err != nil {
		return err
	}

	if len(sizes) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for _, s := range sizes {
		if s.Missing {
			fmt.Fprintf(deps.Stdout, "%s: no %s\n", s.Document, qalog.ArtifactName)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %d KB (%d B)\n", s.Document, s.KB(), s.Bytes)
	}
	return nil
}
