package batch

import (
	"context"
	"time"

	"github.com/fwojciec/qalog"
	"golang.org/x/time/rate"
)

// DefaultWait is the minimum pause between the starts of two downloads.
const DefaultWait = time.Second

// Downloader fetches export archives one at a time, pacing requests so
// the remote store is not hammered.
type Downloader struct {
	Downloader qalog.Downloader
	Layout     qalog.DocumentLayout
	Wait       time.Duration
}

// DownloadAll downloads the archive of every remote document into its zip
// path. Invalid manifest entries fail without a request.
func (d *Downloader) DownloadAll(ctx context.Context, docs []qalog.RemoteDocument, progress ProgressFunc) (*Result, error) {
	wait := d.Wait
	if wait <= 0 {
		wait = DefaultWait
	}
	limiter := rate.NewLimiter(rate.Every(wait), 1)

	total := len(docs)
	notify(progress, Event{Type: EventStarted, Total: total})

	result := &Result{}
	for i, doc := range docs {
		it := Item{Name: doc.Name}
		if err := doc.Validate(); err != nil {
			it.Err = err
		} else if err := limiter.Wait(ctx); err != nil {
			return result, err
		} else {
			it.Err = d.Downloader.Download(ctx, doc.ID, d.Layout.ZipPath(doc.Name))
		}

		result.Items = append(result.Items, it)
		notify(progress, itemEvent(it, i+1, total))
	}

	notify(progress, Event{Type: EventFinished, Completed: total, Total: total})
	return result, ctx.Err()
}
