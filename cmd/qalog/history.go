package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/qalog"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Forget {
		if c.Document == "" {
			err := qalog.Errorf(qalog.EINVALID, "--forget requires --document")
			fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
			return err
		}
		if err := deps.Conversions.DeleteConversions(deps.Ctx, c.Document); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Forgot conversions of %s\n", c.Document)
		return nil
	}

	filter := qalog.ConversionFilter{Limit: c.Limit}
	if c.Document != "" {
		filter.Document = &c.Document
	}

	conversions, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qalog.ErrorMessage(err))
		return err
	}

	if len(conversions) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions recorded. Use 'qalog convert' to create some.")
		return nil
	}

	for _, cv := range conversions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d categories  %d asks  %s\n",
			cv.ConvertedAt.Local().Format(time.DateTime), cv.ID, cv.Document,
			cv.Categories, cv.Asks, cv.ContentHash)
	}
	return nil
}
