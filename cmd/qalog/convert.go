package main

import (
	"fmt"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/batch"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	docs, err := findDocuments(deps, c.Names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'qalog sync' to unpack downloaded archives.")
		return nil
	}

	conv := &batch.Converter{
		Extractor:   deps.Extractor,
		Writer:      deps.Writer,
		Conversions: deps.Conversions,
		Concurrency: c.Concurrency,
	}
	result, err := conv.ConvertAll(deps.Ctx, docs, func(e batch.Event) {
		if e.Type == batch.EventFailed {
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", e.Name, qalog.ErrorMessage(e.Err))
		}
	})
	if err != nil {
		return err
	}

	for _, cv := range result.Conversions {
		fmt.Fprintf(deps.Stdout, "%s  %d categories  %d asks  %d B  %s\n",
			cv.Document, cv.Categories, cv.Asks, cv.Bytes, cv.ContentHash)
	}

	return summarize(deps, "Converted", &result.Result, len(docs))
}
