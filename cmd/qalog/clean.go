package main

import (
	"fmt"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/fs"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	opts := fs.CleanOptions{
		Zips:   c.All || c.Zips,
		Docs:   c.All || c.Docs,
		JSON:   c.All || c.JSON,
		Images: c.All || c.Images,
	}

	if !opts.Any() {
		err := qalog.Errorf(qalog.EINVALID, "nothing selected; pass --all or any of --zips, --docs, --json, --images")
		fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
		return err
	}

	if err := deps.Store.Clean(deps.Ctx, opts); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cleaned.")
	return nil
}
