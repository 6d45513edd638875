package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qalog"
)

// Ensure LoggingResultWriter implements qalog.ResultWriter.
var _ qalog.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with debug logging.
type LoggingResultWriter struct {
	next   qalog.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next qalog.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the artifact.
func (w *LoggingResultWriter) WriteResult(ctx context.Context, doc *qalog.Document, categories []*qalog.Category) (conv *qalog.Conversion, err error) {
	defer func(begin time.Time) {
		attrs := []any{"document", doc.Name, "duration", time.Since(begin)}
		if conv != nil {
			attrs = append(attrs, "path", conv.Path, "bytes", conv.Bytes, "hash", conv.ContentHash)
		}
		attrs = append(attrs, "err", err)
		w.logger.Debug("write result", attrs...)
	}(time.Now())
	return w.next.WriteResult(ctx, doc, categories)
}
