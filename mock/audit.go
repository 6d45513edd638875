package mock

import (
	"context"

	"github.com/fwojciec/qalog"
)

var _ qalog.ImageAuditor = (*ImageAuditor)(nil)

// ImageAuditor is a mock implementation of qalog.ImageAuditor.
type ImageAuditor struct {
	AuditFn func(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (*qalog.ImageReport, error)
}

func (a *ImageAuditor) Audit(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (*qalog.ImageReport, error) {
	return a.AuditFn(ctx, doc, categories)
}
