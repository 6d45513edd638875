package fs

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/qalog"
)

var artifactRe = regexp.MustCompile(`^converted.*\.json$`)

// Mismatch reports an artifact whose content differs from the first
// artifact in the same folder.
type Mismatch struct {
	Document string
	File     string
	Base     string
}

// CheckArtifacts compares, within each document folder, every file named
// converted*.json against the first one in name order. Repeated runs of the
// converter over the same input must produce no mismatches.
func (s *DocumentStore) CheckArtifacts(ctx context.Context) ([]Mismatch, error) {
	docs, err := s.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var out []Mismatch
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := os.ReadDir(doc.Dir)
		if err != nil {
			return nil, err
		}

		var names []string
		for _, e := range entries {
			if !e.IsDir() && artifactRe.MatchString(e.Name()) {
				names = append(names, e.Name())
			}
		}
		if len(names) < 2 {
			continue
		}
		sort.Strings(names)

		base, err := os.ReadFile(filepath.Join(doc.Dir, names[0]))
		if err != nil {
			return nil, err
		}
		for _, name := range names[1:] {
			data, err := os.ReadFile(filepath.Join(doc.Dir, name))
			if err != nil {
				return nil, err
			}
			if !bytes.Equal(base, data) {
				out = append(out, Mismatch{Document: doc.Name, File: name, Base: names[0]})
			}
		}
	}
	return out, nil
}

// ArtifactSize is the size of one document's JSON artifact.
type ArtifactSize struct {
	Document string
	Bytes    int64
	Missing  bool
}

// KB returns the size in whole kilobytes of 1000 bytes.
func (a ArtifactSize) KB() int64 {
	return a.Bytes / 1000
}

// ArtifactSizes reports the size of every document's JSON artifact.
func (s *DocumentStore) ArtifactSizes(ctx context.Context) ([]ArtifactSize, error) {
	docs, err := s.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ArtifactSize, 0, len(docs))
	for _, doc := range docs {
		info, err := os.Stat(doc.ArtifactPath())
		if errors.Is(err, fs.ErrNotExist) {
			out = append(out, ArtifactSize{Document: doc.Name, Missing: true})
			continue
		} else if err != nil {
			return nil, err
		}
		out = append(out, ArtifactSize{Document: doc.Name, Bytes: info.Size()})
	}
	return out, nil
}

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	Zips   bool
	Docs   bool
	JSON   bool
	Images bool
}

// Any reports whether at least one kind of file is selected.
func (o CleanOptions) Any() bool {
	return o.Zips || o.Docs || o.JSON || o.Images
}

// Clean removes downloaded, extracted and generated files. Docs removes
// HTML exports, JSON removes generated artifacts and Images removes images
// directories. Selecting all three removes the document folders entirely.
func (s *DocumentStore) Clean(ctx context.Context, opts CleanOptions) error {
	if !opts.Any() {
		return qalog.Errorf(qalog.EINVALID, "nothing selected to clean")
	}

	if opts.Zips {
		if err := os.RemoveAll(s.ZipsDir()); err != nil {
			return err
		}
	}
	if !opts.Docs && !opts.JSON && !opts.Images {
		return nil
	}

	docs, err := s.FindDocuments(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Docs && opts.JSON && opts.Images {
			if err := os.RemoveAll(doc.Dir); err != nil {
				return err
			}
			continue
		}
		if err := cleanDocument(doc, opts); err != nil {
			return err
		}
	}
	return nil
}

func cleanDocument(doc *qalog.Document, opts CleanOptions) error {
	entries, err := os.ReadDir(doc.Dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(doc.Dir, name)

		switch {
		case e.IsDir():
			if opts.Images && name == "images" {
				if err := os.RemoveAll(path); err != nil {
					return err
				}
			}
		case opts.JSON && (strings.HasSuffix(name, ".json") || name == qalog.MarkdownName),
			opts.Docs && strings.HasSuffix(name, ".html"):
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}
