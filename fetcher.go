package qalog

import "context"

// RemoteDocument identifies a transcript in the remote document store.
type RemoteDocument struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// Validate returns an error if the remote document contains invalid fields.
func (d *RemoteDocument) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "remote document name required")
	}
	if d.ID == "" {
		return Errorf(EINVALID, "remote document ID required for %q", d.Name)
	}
	return nil
}

// Downloader retrieves export archives from the remote document store.
type Downloader interface {
	// Download saves the zip export of the document with the given ID to dst.
	Download(ctx context.Context, id, dst string) error
}

// Unpacker extracts an export archive into a document folder.
type Unpacker interface {
	// Unpack removes stale images from doc and extracts the archive at
	// zipPath into doc.Dir. Returns ENOTFOUND if the archive does not exist.
	Unpack(ctx context.Context, zipPath string, doc *Document) error
}
