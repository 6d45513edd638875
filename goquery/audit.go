// Package goquery inspects exported HTML documents with goquery.
package goquery

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/qalog"
)

// Ensure ImageAuditor implements qalog.ImageAuditor at compile time.
var _ qalog.ImageAuditor = (*ImageAuditor)(nil)

// ImageAuditor cross-checks three image inventories of a document: the
// files in its images directory, the <img> sources of its HTML export and
// the references in its extracted tree.
type ImageAuditor struct{}

// NewImageAuditor creates a new ImageAuditor.
func NewImageAuditor() *ImageAuditor {
	return &ImageAuditor{}
}

// Audit reports images on disk the tree never mentions, images the tree
// mentions that are not on disk, and images of the HTML export that the
// extraction dropped.
func (a *ImageAuditor) Audit(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (*qalog.ImageReport, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(doc.HTMLPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, qalog.Errorf(qalog.ENOTFOUND, "html export for %q not found", doc.Name)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	source, err := SourceImages(f)
	if err != nil {
		return nil, err
	}

	disk, err := diskImages(doc.ImagesDir())
	if err != nil {
		return nil, err
	}

	tree := qalog.ImageNames(categories)
	inTree := toSet(tree)
	onDisk := toSet(disk)

	return &qalog.ImageReport{
		Document:     doc.Name,
		Unreferenced: without(disk, inTree),
		Missing:      without(tree, onDisk),
		Dropped:      without(source, inTree),
	}, nil
}

// SourceImages returns the file names of the images an HTML export embeds
// from its images directory, deduplicated, in document order.
func SourceImages(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, qalog.Errorf(qalog.EINVALID, "failed to parse HTML: %v", err)
	}

	var names []string
	seen := make(map[string]bool)
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		name, ok := strings.CutPrefix(src, qalog.ImagePrefix)
		if !ok || name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})
	return names, nil
}

func diskImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// without returns the names not present in exclude, keeping order.
func without(names []string, exclude map[string]bool) []string {
	out := []string{}
	for _, n := range names {
		if !exclude[n] {
			out = append(out, n)
		}
	}
	return out
}
