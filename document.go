package qalog

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

const (
	// ArtifactName is the file name of the JSON tree saved next to a source document.
	ArtifactName = "converted.json"

	// MarkdownName is the file name of the optional markdown rendering.
	MarkdownName = "converted.md"
)

// Document is a local transcript folder unpacked from an export archive.
// The folder holds the HTML export, its images directory and the
// generated artifacts.
type Document struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Dir == "" {
		return Errorf(EINVALID, "document directory required")
	}
	return nil
}

// HTMLPath returns the path of the HTML export. The export names the file
// after the document with spaces removed.
func (d *Document) HTMLPath() string {
	return filepath.Join(d.Dir, strings.ReplaceAll(d.Name, " ", "")+".html")
}

// ImagesDir returns the directory holding the document's images.
func (d *Document) ImagesDir() string {
	return filepath.Join(d.Dir, "images")
}

// ArtifactPath returns the path of the JSON artifact.
func (d *Document) ArtifactPath() string {
	return filepath.Join(d.Dir, ArtifactName)
}

// MarkdownPath returns the path of the markdown rendering.
func (d *Document) MarkdownPath() string {
	return filepath.Join(d.Dir, MarkdownName)
}

// DocumentSource discovers local transcript folders.
type DocumentSource interface {
	// FindDocuments lists every document folder, sorted by name.
	FindDocuments(ctx context.Context) ([]*Document, error)

	// FindDocumentByName returns a single document folder.
	// Returns ENOTFOUND if the folder does not exist.
	FindDocumentByName(ctx context.Context, name string) (*Document, error)
}

// DocumentLayout maps document names to their local archive and folder.
type DocumentLayout interface {
	// ZipPath returns the export archive path for the named document.
	ZipPath(name string) string

	// Document returns the folder for name whether or not it exists yet.
	Document(name string) *Document
}

// ResultWriter persists an extracted tree next to its source document.
type ResultWriter interface {
	// WriteResult saves categories for doc and returns a record of the
	// written artifact. ID and ConvertedAt are left for the caller.
	WriteResult(ctx context.Context, doc *Document, categories []*Category) (*Conversion, error)
}

// Conversion records one successful extraction.
type Conversion struct {
	ID          string    `json:"id"`
	Document    string    `json:"document"`
	Path        string    `json:"path"`
	Categories  int       `json:"categories"`
	Asks        int       `json:"asks"`
	Bytes       int       `json:"bytes"`
	ContentHash string    `json:"contentHash"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.Document == "" {
		return Errorf(EINVALID, "conversion document required")
	}
	if c.Path == "" {
		return Errorf(EINVALID, "conversion path required")
	}
	return nil
}

// ConversionService represents a service for managing conversion history.
type ConversionService interface {
	// CreateConversion records a new conversion.
	CreateConversion(ctx context.Context, c *Conversion) error

	// FindConversions retrieves conversions matching the filter, newest first.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)

	// DeleteConversions removes every conversion of a document.
	DeleteConversions(ctx context.Context, document string) error
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	Document *string `json:"document"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
