package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/fs"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	docs, err := findDocuments(deps, c.Names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
		return err
	}

	failed := 0
	for _, doc := range docs {
		categories, err := fs.ReadResult(deps.Ctx, doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
			failed++
			continue
		}

		report, err := deps.Auditor.Audit(deps.Ctx, doc, categories)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
			failed++
			continue
		}

		if report.OK() {
			fmt.Fprintf(deps.Stdout, "%s: ok\n", doc.Name)
			continue
		}
		failed++
		fmt.Fprintf(deps.Stdout, "%s:\n", doc.Name)
		printNames(deps, "on disk but not in the file contents", report.Unreferenced)
		printNames(deps, "in the file contents but not on disk", report.Missing)
		printNames(deps, "in the HTML but dropped by the conversion", report.Dropped)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents have image problems", failed, len(docs))
	}
	return nil
}

func printNames(deps *Dependencies, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(deps.Stdout, "  %s: %s\n", label, strings.Join(names, ", "))
}
