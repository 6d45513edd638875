package main

import (
	"fmt"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/batch"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	docs, err := selectManifest(deps.Manifest, c.Names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
		return err
	}

	d := &batch.Downloader{
		Downloader: deps.Downloader,
		Layout:     deps.Layout,
		Wait:       c.Wait,
	}
	result, err := d.DownloadAll(deps.Ctx, docs, func(e batch.Event) {
		switch e.Type {
		case batch.EventCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] downloaded %s\n", e.Completed, e.Total, e.Name)
		case batch.EventFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", e.Completed, e.Total, e.Name, qalog.ErrorMessage(e.Err))
		}
	})
	if err != nil {
		return err
	}

	return summarize(deps, "Downloaded", result, len(docs))
}

// summarize prints the outcome of a batch and fails if any item failed.
func summarize(deps *Dependencies, verb string, result *batch.Result, total int) error {
	fmt.Fprintf(deps.Stdout, "%s %d of %d documents\n", verb, result.Succeeded(), total)
	if n := result.Failed(); n > 0 {
		return fmt.Errorf("%d of %d documents failed", n, total)
	}
	return nil
}
