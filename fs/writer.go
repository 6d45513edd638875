package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/qalog"
)

// Ensure Writer implements qalog.ResultWriter at compile time.
var _ qalog.ResultWriter = (*Writer)(nil)

// Writer saves extracted trees next to their source documents.
type Writer struct {
	renderer qalog.Renderer
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithRenderer also writes a rendering of the tree to the document's
// markdown path.
func WithRenderer(r qalog.Renderer) WriterOption {
	return func(w *Writer) {
		w.renderer = r
	}
}

// NewWriter creates a new Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteResult writes categories as JSON to the document's artifact path.
// Files are written to a temporary name and renamed into place, so a failed
// write leaves any previous artifact intact.
func (w *Writer) WriteResult(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (*qalog.Conversion, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := qalog.MarshalCategories(categories)
	if err != nil {
		return nil, qalog.Errorf(qalog.EINTERNAL, "failed to marshal %q: %v", doc.Name, err)
	}
	if err := writeFileAtomic(doc.ArtifactPath(), data); err != nil {
		return nil, err
	}

	if w.renderer != nil {
		var buf bytes.Buffer
		if err := w.renderer.Render(&buf, categories); err != nil {
			return nil, err
		}
		if err := writeFileAtomic(doc.MarkdownPath(), buf.Bytes()); err != nil {
			return nil, err
		}
	}

	stats := qalog.CountTree(categories)
	return &qalog.Conversion{
		Document:    doc.Name,
		Path:        doc.ArtifactPath(),
		Categories:  stats.Categories,
		Asks:        stats.Asks,
		Bytes:       len(data),
		ContentHash: Hash(data),
	}, nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ReadResult loads the JSON artifact of doc.
// Returns ENOTFOUND if the document has not been converted.
func ReadResult(ctx context.Context, doc *qalog.Document) ([]*qalog.Category, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(doc.ArtifactPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, qalog.Errorf(qalog.ENOTFOUND, "%q has not been converted", doc.Name)
	} else if err != nil {
		return nil, err
	}

	var categories []*qalog.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, qalog.Errorf(qalog.EINVALID, "invalid artifact for %q: %v", doc.Name, err)
	}
	return categories, nil
}
