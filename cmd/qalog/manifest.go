package main

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/fwojciec/qalog"
	"gopkg.in/yaml.v3"
)

//go:embed documents.yaml
var defaultManifest []byte

// manifestFile is the on-disk layout of a document manifest.
type manifestFile struct {
	Documents []qalog.RemoteDocument `yaml:"documents"`
}

// LoadManifest decodes a YAML manifest of document names and remote IDs.
func LoadManifest(r io.Reader) ([]qalog.RemoteDocument, error) {
	var m manifestFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, qalog.Errorf(qalog.EINVALID, "invalid manifest: %v", err)
	}

	seen := make(map[string]bool, len(m.Documents))
	for i := range m.Documents {
		doc := &m.Documents[i]
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		if seen[doc.Name] {
			return nil, qalog.Errorf(qalog.ECONFLICT, "document %q listed twice", doc.Name)
		}
		seen[doc.Name] = true
	}
	return m.Documents, nil
}

// loadManifest reads the manifest at path, or the built-in one when path
// is empty.
func loadManifest(path string) ([]qalog.RemoteDocument, error) {
	if path == "" {
		return LoadManifest(bytes.NewReader(defaultManifest))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadManifest(f)
}

// selectManifest narrows docs to names, keeping manifest order.
// Returns ENOTFOUND for a name the manifest does not list.
func selectManifest(docs []qalog.RemoteDocument, names []string) ([]qalog.RemoteDocument, error) {
	if len(names) == 0 {
		return docs, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []qalog.RemoteDocument
	for _, d := range docs {
		if want[d.Name] {
			out = append(out, d)
			delete(want, d.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, qalog.Errorf(qalog.ENOTFOUND, "document %q is not in the manifest", n)
		}
	}
	return out, nil
}
