// Package fs provides file-based storage for transcript documents and the
// artifacts generated from them.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/qalog"
)

// Directory names under the files root.
const (
	DocumentsDirName = "documents"
	ZipsDirName      = "ZipFiles"
)

// Ensure DocumentStore implements qalog.DocumentSource at compile time.
var _ qalog.DocumentSource = (*DocumentStore)(nil)

// Ensure DocumentStore implements qalog.DocumentLayout at compile time.
var _ qalog.DocumentLayout = (*DocumentStore)(nil)

// DocumentStore discovers document folders under a files root laid out as
//
//	<root>/ZipFiles/<Name>.zip
//	<root>/documents/<Name>/<NameWithoutSpaces>.html
type DocumentStore struct {
	root string
}

// NewDocumentStore creates a DocumentStore rooted at dir.
func NewDocumentStore(dir string) *DocumentStore {
	return &DocumentStore{root: dir}
}

// DocumentsDir returns the directory holding document folders.
func (s *DocumentStore) DocumentsDir() string {
	return filepath.Join(s.root, DocumentsDirName)
}

// ZipsDir returns the directory holding downloaded export archives.
func (s *DocumentStore) ZipsDir() string {
	return filepath.Join(s.root, ZipsDirName)
}

// ZipPath returns the archive path for the named document.
func (s *DocumentStore) ZipPath(name string) string {
	return filepath.Join(s.ZipsDir(), name+".zip")
}

// Document returns the folder for name whether or not it exists yet.
func (s *DocumentStore) Document(name string) *qalog.Document {
	return &qalog.Document{Name: name, Dir: filepath.Join(s.DocumentsDir(), name)}
}

// FindDocuments lists every document folder sorted by name. A missing
// documents directory yields an empty list.
func (s *DocumentStore) FindDocuments(ctx context.Context) ([]*qalog.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.DocumentsDir())
	if errors.Is(err, fs.ErrNotExist) {
		return []*qalog.Document{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]*qalog.Document, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		docs = append(docs, s.Document(e.Name()))
	}
	return docs, nil
}

// FindDocumentByName returns the named document folder.
func (s *DocumentStore) FindDocumentByName(ctx context.Context, name string) (*qalog.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, qalog.Errorf(qalog.EINVALID, "document name required")
	}

	doc := s.Document(name)
	info, err := os.Stat(doc.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, qalog.Errorf(qalog.ENOTFOUND, "document %q not found", name)
	} else if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if !info.IsDir() {
		return nil, qalog.Errorf(qalog.EINVALID, "document %q is not a directory", name)
	}
	return doc, nil
}

// Hash returns the hex xxHash of data.
func Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
