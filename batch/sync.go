package batch

import (
	"context"

	"github.com/fwojciec/qalog"
)

// Syncer unpacks downloaded archives into document folders.
type Syncer struct {
	Unpacker qalog.Unpacker
	Layout   qalog.DocumentLayout
}

// SyncAll unpacks the archive of every named document. A missing archive
// marks the document as skipped rather than failed.
func (s *Syncer) SyncAll(ctx context.Context, names []string, progress ProgressFunc) (*Result, error) {
	total := len(names)
	notify(progress, Event{Type: EventStarted, Total: total})

	result := &Result{}
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		it := Item{Name: name}
		err := s.Unpacker.Unpack(ctx, s.Layout.ZipPath(name), s.Layout.Document(name))
		switch {
		case err == nil:
		case qalog.ErrorCode(err) == qalog.ENOTFOUND:
			it.Skipped = true
		default:
			it.Err = err
		}

		result.Items = append(result.Items, it)
		notify(progress, itemEvent(it, i+1, total))
	}

	notify(progress, Event{Type: EventFinished, Completed: total, Total: total})
	return result, nil
}
