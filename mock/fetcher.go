package mock

import (
	"context"

	"github.com/fwojciec/qalog"
)

var _ qalog.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of qalog.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, id, dst string) error
}

func (d *Downloader) Download(ctx context.Context, id, dst string) error {
	return d.DownloadFn(ctx, id, dst)
}

var _ qalog.Unpacker = (*Unpacker)(nil)

// Unpacker is a mock implementation of qalog.Unpacker.
type Unpacker struct {
	UnpackFn func(ctx context.Context, zipPath string, doc *qalog.Document) error
}

func (u *Unpacker) Unpack(ctx context.Context, zipPath string, doc *qalog.Document) error {
	return u.UnpackFn(ctx, zipPath, doc)
}
