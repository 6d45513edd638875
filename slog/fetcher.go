package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qalog"
)

// Ensure LoggingDownloader implements qalog.Downloader.
var _ qalog.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   qalog.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next qalog.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, id, dst string) (err error) {
	defer func(begin time.Time) {
		d.logger.Info("download",
			"id", id,
			"dst", dst,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, id, dst)
}

// Ensure LoggingUnpacker implements qalog.Unpacker.
var _ qalog.Unpacker = (*LoggingUnpacker)(nil)

// LoggingUnpacker wraps an Unpacker with logging.
type LoggingUnpacker struct {
	next   qalog.Unpacker
	logger *slog.Logger
}

// NewLoggingUnpacker creates a new LoggingUnpacker.
func NewLoggingUnpacker(next qalog.Unpacker, logger *slog.Logger) *LoggingUnpacker {
	return &LoggingUnpacker{next: next, logger: logger}
}

// Unpack delegates to the wrapped unpacker and logs the operation.
func (u *LoggingUnpacker) Unpack(ctx context.Context, zipPath string, doc *qalog.Document) (err error) {
	defer func(begin time.Time) {
		u.logger.Info("unpack",
			"zip", zipPath,
			"document", doc.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return u.next.Unpack(ctx, zipPath, doc)
}
