package main

import (
	"fmt"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	mismatches, err := deps.Store.CheckArtifacts(deps.Ctx)
	if err != nil {
		return err
	}

	for _, m := range mismatches {
		fmt.Fprintf(deps.Stdout, "In folder %s: file %s is not equal to file %s\n", m.Document, m.File, m.Base)
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%d artifacts differ", len(mismatches))
	}
	fmt.Fprintln(deps.Stdout, "All artifacts match.")
	return nil
}
