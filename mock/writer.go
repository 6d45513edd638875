package mock

import (
	"context"
	"io"

	"github.com/fwojciec/qalog"
)

var _ qalog.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of qalog.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (*qalog.Conversion, error)
}

func (w *ResultWriter) WriteResult(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (*qalog.Conversion, error) {
	return w.WriteResultFn(ctx, doc, categories)
}

var _ qalog.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of qalog.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, categories []*qalog.Category) error
}

func (r *Renderer) Render(w io.Writer, categories []*qalog.Category) error {
	return r.RenderFn(w, categories)
}
