package html

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/qalog"
)

// Ensure Extractor implements qalog.Extractor at compile time.
var _ qalog.Extractor = (*Extractor)(nil)

// Extractor reads a document's HTML export from disk and builds its tree.
// Each call is independent, so one Extractor may serve concurrent callers.
type Extractor struct {
	permissive bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPermissive makes extraction create placeholders instead of failing
// when the walk state and the document disagree.
func WithPermissive(permissive bool) Option {
	return func(x *Extractor) {
		x.permissive = permissive
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	x := &Extractor{}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract parses doc's HTML export and returns its categories.
func (x *Extractor) Extract(ctx context.Context, doc *qalog.Document) ([]*qalog.Category, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(doc.HTMLPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, qalog.Errorf(qalog.ENOTFOUND, "HTML export not found for %q", doc.Name)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, err
	}

	return Build(root, Options{Document: doc.Name, Permissive: x.permissive})
}
