package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/qalog"
	qalhttp "github.com/fwojciec/qalog/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDownloader(server *httptest.Server, opts ...qalhttp.Option) *qalhttp.Downloader {
	opts = append([]qalhttp.Option{
		qalhttp.WithExportURL(server.URL + "/export?id=%s"),
		qalhttp.WithRetryDelays(),
	}, opts...)
	return qalhttp.NewDownloader(opts...)
}

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("saves archive body to destination", func(t *testing.T) {
		t.Parallel()

		var gotID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = r.URL.Query().Get("id")
			_, _ = w.Write([]byte("PK zip"))
		}))
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "ZipFiles", "Places.zip")

		err := newDownloader(server).Download(context.Background(), "doc-1", dst)

		require.NoError(t, err)
		assert.Equal(t, "doc-1", gotID)
		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "PK zip", string(data))
	})

	t.Run("follows a single redirect", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/archive", http.StatusFound)
		})
		mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("redirected zip"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "Places.zip")

		err := newDownloader(server).Download(context.Background(), "doc-1", dst)

		require.NoError(t, err)
		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "redirected zip", string(data))
	})

	t.Run("fails on a second redirect", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/hop", http.StatusFound)
		})
		mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/archive", http.StatusFound)
		})
		mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("zip"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		dst := filepath.Join(t.TempDir(), "Places.zip")

		err := newDownloader(server).Download(context.Background(), "doc-1", dst)

		assert.Equal(t, qalog.EINVALID, qalog.ErrorCode(err))
		_, statErr := os.Stat(dst)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("fails on a redirect without location", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusFound)
		}))
		defer server.Close()

		err := newDownloader(server).Download(context.Background(), "doc-1", filepath.Join(t.TempDir(), "x.zip"))

		require.Error(t, err)
		assert.Equal(t, qalog.EINVALID, qalog.ErrorCode(err))
		assert.Contains(t, qalog.ErrorMessage(err), "without a location")
	})

	t.Run("does not retry missing exports", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			http.NotFound(w, r)
		}))
		defer server.Close()

		dl := newDownloader(server, qalhttp.WithRetryDelays(time.Millisecond, time.Millisecond))

		err := dl.Download(context.Background(), "doc-1", filepath.Join(t.TempDir(), "x.zip"))

		assert.Equal(t, qalog.ENOTFOUND, qalog.ErrorCode(err))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("zip"))
		}))
		defer server.Close()

		dl := newDownloader(server, qalhttp.WithRetryDelays(time.Millisecond))
		dst := filepath.Join(t.TempDir(), "x.zip")

		err := dl.Download(context.Background(), "doc-1", dst)

		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("gives up after the last delay", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		dl := newDownloader(server, qalhttp.WithRetryDelays(time.Millisecond, time.Millisecond))

		err := dl.Download(context.Background(), "doc-1", filepath.Join(t.TempDir(), "x.zip"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("requires an ID", func(t *testing.T) {
		t.Parallel()

		err := qalhttp.NewDownloader().Download(context.Background(), "", "x.zip")

		assert.Equal(t, qalog.EINVALID, qalog.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("zip"))
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := newDownloader(server).Download(ctx, "doc-1", filepath.Join(t.TempDir(), "x.zip"))

		require.Error(t, err)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, qalhttp.DefaultRetryDelays())
}
