package fs

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/qalog"
)

// Ensure Unpacker implements qalog.Unpacker at compile time.
var _ qalog.Unpacker = (*Unpacker)(nil)

// Unpacker extracts export archives into document folders.
type Unpacker struct{}

// NewUnpacker creates a new Unpacker.
func NewUnpacker() *Unpacker {
	return &Unpacker{}
}

// Unpack removes the files in the document's images directory, then
// extracts every archive entry into doc.Dir, creating it if needed.
// Entries that would land outside doc.Dir are rejected.
func (u *Unpacker) Unpack(ctx context.Context, zipPath string, doc *qalog.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	r, err := zip.OpenReader(zipPath)
	if errors.Is(err, fs.ErrNotExist) {
		return qalog.Errorf(qalog.ENOTFOUND, "archive %q not found", zipPath)
	} else if err != nil {
		return qalog.Errorf(qalog.EINVALID, "failed to open archive %q: %v", zipPath, err)
	}
	defer r.Close()

	if err := os.MkdirAll(doc.Dir, 0755); err != nil {
		return err
	}
	if err := clearDir(doc.ImagesDir()); err != nil {
		return err
	}

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := extractFile(f, doc.Dir); err != nil {
			return err
		}
	}
	return nil
}

// clearDir removes the files directly inside dir, keeping dir itself.
func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dst string) error {
	target := filepath.Join(dst, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
		return qalog.Errorf(qalog.EINVALID, "archive entry %q escapes destination", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extract %s: %w", f.Name, err)
	}
	return out.Close()
}
