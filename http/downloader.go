// Package http downloads document export archives over HTTP.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/qalog"
)

// DefaultExportURL is the export endpoint of the remote document store.
// The single verb is replaced with the document ID.
const DefaultExportURL = "https://docs.google.com/feeds/download/documents/export/Export?id=%s&exportFormat=zip"

// DefaultTimeout bounds a single download attempt.
const DefaultTimeout = 2 * time.Minute

// Ensure Downloader implements qalog.Downloader at compile time.
var _ qalog.Downloader = (*Downloader)(nil)

// Downloader fetches export archives. The export endpoint answers with at
// most one redirect to the archive; any further redirect is an error.
type Downloader struct {
	client    *http.Client
	timeout   time.Duration
	exportURL string
	delays    []time.Duration
	logger    *slog.Logger
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout of a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithExportURL overrides the export URL format.
func WithExportURL(format string) Option {
	return func(dl *Downloader) {
		dl.exportURL = format
	}
}

// WithRetryDelays sets the waits between attempts. No delays disables retries.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(dl *Downloader) {
		dl.delays = delays
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(dl *Downloader) {
		dl.logger = logger
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...Option) *Downloader {
	dl := &Downloader{
		timeout:   DefaultTimeout,
		exportURL: DefaultExportURL,
		delays:    DefaultRetryDelays(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > 1 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	return dl
}

// Download saves the export archive of the document with the given ID to
// dst. The archive is written to a temporary file first so a failed download
// never leaves a truncated archive behind.
func (dl *Downloader) Download(ctx context.Context, id, dst string) error {
	if id == "" {
		return qalog.Errorf(qalog.EINVALID, "document ID required")
	}

	url := fmt.Sprintf(dl.exportURL, id)
	return retry(ctx, dl.delays, func(attempt int, err error) {
		dl.logger.Warn("retrying download", "id", id, "attempt", attempt, "err", err)
	}, func() error {
		return dl.download(ctx, url, dst)
	})
}

func (dl *Downloader) download(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return qalog.Errorf(qalog.EINVALID, "invalid export URL: %v", err)
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	tmp := dst + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("read archive: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 300 && code < 400:
		if resp.Header.Get("Location") == "" {
			return qalog.Errorf(qalog.EINVALID, "redirected without a location")
		}
		return qalog.Errorf(qalog.EINVALID, "redirected more than once")
	case code == http.StatusNotFound:
		return qalog.Errorf(qalog.ENOTFOUND, "export not found")
	case code >= 400 && code < 500:
		return qalog.Errorf(qalog.EINVALID, "HTTP %d", code)
	default:
		return fmt.Errorf("HTTP %d", code)
	}
}

// permanent reports whether err cannot be fixed by trying again.
func permanent(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch qalog.ErrorCode(err) {
	case qalog.EINVALID, qalog.ENOTFOUND:
		return true
	}
	return false
}
