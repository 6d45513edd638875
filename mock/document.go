package mock

import (
	"context"

	"github.com/fwojciec/qalog"
)

var _ qalog.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of qalog.DocumentSource.
type DocumentSource struct {
	FindDocumentsFn      func(ctx context.Context) ([]*qalog.Document, error)
	FindDocumentByNameFn func(ctx context.Context, name string) (*qalog.Document, error)
}

func (s *DocumentSource) FindDocuments(ctx context.Context) ([]*qalog.Document, error) {
	return s.FindDocumentsFn(ctx)
}

func (s *DocumentSource) FindDocumentByName(ctx context.Context, name string) (*qalog.Document, error) {
	return s.FindDocumentByNameFn(ctx, name)
}

var _ qalog.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of qalog.ConversionService.
type ConversionService struct {
	CreateConversionFn  func(ctx context.Context, c *qalog.Conversion) error
	FindConversionsFn   func(ctx context.Context, filter qalog.ConversionFilter) ([]*qalog.Conversion, error)
	DeleteConversionsFn func(ctx context.Context, document string) error
}

func (s *ConversionService) CreateConversion(ctx context.Context, c *qalog.Conversion) error {
	return s.CreateConversionFn(ctx, c)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter qalog.ConversionFilter) ([]*qalog.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ConversionService) DeleteConversions(ctx context.Context, document string) error {
	return s.DeleteConversionsFn(ctx, document)
}

var _ qalog.DocumentLayout = (*DocumentLayout)(nil)

// DocumentLayout is a mock implementation of qalog.DocumentLayout.
type DocumentLayout struct {
	ZipPathFn  func(name string) string
	DocumentFn func(name string) *qalog.Document
}

func (l *DocumentLayout) ZipPath(name string) string {
	return l.ZipPathFn(name)
}

func (l *DocumentLayout) Document(name string) *qalog.Document {
	return l.DocumentFn(name)
}
