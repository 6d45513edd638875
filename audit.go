package qalog

import "context"

// ImageReport lists the mismatches between a document's images and its tree.
type ImageReport struct {
	Document string `json:"document"`

	// Unreferenced are image files on disk that the tree never mentions.
	Unreferenced []string `json:"unreferenced"`

	// Missing are images the tree mentions that are not on disk.
	Missing []string `json:"missing"`

	// Dropped are images in the source HTML that the tree never mentions.
	Dropped []string `json:"dropped"`
}

// OK reports whether the report found no mismatches.
func (r *ImageReport) OK() bool {
	return len(r.Unreferenced) == 0 && len(r.Missing) == 0 && len(r.Dropped) == 0
}

// ImageAuditor compares a document's images with its extracted tree.
type ImageAuditor interface {
	Audit(ctx context.Context, doc *Document, categories []*Category) (*ImageReport, error)
}
