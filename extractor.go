package qalog

import "context"

// Extractor builds the category tree of a transcript.
type Extractor interface {
	// Extract reads the document's HTML export and returns its categories.
	// Returns EINVALID if the export lacks a body, a style block or a bold class.
	Extract(ctx context.Context, doc *Document) ([]*Category, error)
}
