package main

import (
	"fmt"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/batch"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	docs, err := selectManifest(deps.Manifest, c.Names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
		return err
	}

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}

	s := &batch.Syncer{Unpacker: deps.Unpacker, Layout: deps.Layout}
	result, err := s.SyncAll(deps.Ctx, names, func(e batch.Event) {
		switch e.Type {
		case batch.EventCompleted:
			fmt.Fprintf(deps.Stdout, "unpacked %s\n", e.Name)
		case batch.EventSkipped:
			fmt.Fprintf(deps.Stderr, "skipped %s: no archive at %s\n", e.Name, deps.Layout.ZipPath(e.Name))
		case batch.EventFailed:
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", e.Name, qalog.ErrorMessage(e.Err))
		}
	})
	if err != nil {
		return err
	}

	return summarize(deps, "Unpacked", result, len(names))
}
