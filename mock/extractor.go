package mock

import (
	"context"

	"github.com/fwojciec/qalog"
)

var _ qalog.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of qalog.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, doc *qalog.Document) ([]*qalog.Category, error)
}

func (e *Extractor) Extract(ctx context.Context, doc *qalog.Document) ([]*qalog.Category, error) {
	return e.ExtractFn(ctx, doc)
}
